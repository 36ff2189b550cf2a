/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"fmt"
	"strings"

	"github.com/suparena/tablestore/errors"
)

// SubstituteParameters replaces every @name token in expr with the serialized
// value bound to name in params. Tokens inside single-quoted string literals
// are left alone, so an address like 'user@example.com' survives intact. A
// token with no bound value is an error; unused params entries are ignored.
func SubstituteParameters(expr string, params map[string]any) (string, error) {
	var sb strings.Builder
	inQuote := false

	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == '\'':
			sb.WriteByte(c)
			i++
			// A doubled quote inside a string literal is an escaped
			// quote, not a terminator.
			if inQuote && i < len(expr) && expr[i] == '\'' {
				sb.WriteByte('\'')
				i++
				continue
			}
			inQuote = !inQuote
		case c == '@' && !inQuote:
			j := i + 1
			for j < len(expr) && isIdentChar(expr[j]) {
				j++
			}
			name := expr[i+1 : j]
			if name == "" {
				return "", errors.NewInvalidArgumentError("filter", "stray @ with no parameter name")
			}
			v, ok := params[name]
			if !ok {
				return "", errors.NewInvalidArgumentError("parameters", fmt.Sprintf("no value bound for @%s", name))
			}
			sb.WriteString(formatValue(v))
			i = j
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String(), nil
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
