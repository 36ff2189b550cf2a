/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Operator is a comparison or logical operator in a filter expression.
type Operator string

const (
	Equal              Operator = "eq"
	NotEqual           Operator = "ne"
	GreaterThan        Operator = "gt"
	GreaterThanOrEqual Operator = "ge"
	LessThan           Operator = "lt"
	LessThanOrEqual    Operator = "le"
	And                Operator = "and"
	Or                 Operator = "or"
	Not                Operator = "not"
)

// Builder assembles an OData filter expression token by token. Builders are
// immutable: every With method returns a new Builder and leaves the receiver
// untouched, so a partial expression can be branched into several filters.
type Builder struct {
	tokens []string
}

// New returns an empty filter Builder.
func New() Builder {
	return Builder{}
}

// with returns a copy of b with one more token.
func (b Builder) with(token string) Builder {
	tokens := make([]string, len(b.tokens), len(b.tokens)+1)
	copy(tokens, b.tokens)
	return Builder{tokens: append(tokens, token)}
}

// WithColumn appends a property name.
func (b Builder) WithColumn(name string) Builder {
	return b.with(name)
}

// WithOperator appends a comparison or logical operator.
func (b Builder) WithOperator(op Operator) Builder {
	return b.with(string(op))
}

// WithValue appends a literal value. Strings are single-quoted with embedded
// quotes doubled, booleans render lowercase, numbers render bare and time
// values render as datetime literals.
func (b Builder) WithValue(v any) Builder {
	return b.with(formatValue(v))
}

// WithDateTime appends a datetime literal in UTC.
func (b Builder) WithDateTime(t time.Time) Builder {
	return b.with(formatDateTime(t))
}

// Build renders the expression with single spaces between tokens. Build does
// not consume the Builder.
func (b Builder) Build() string {
	return strings.Join(b.tokens, " ")
}

// formatValue serializes a Go value as an OData literal.
func formatValue(v any) string {
	switch tv := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(tv, "'", "''") + "'"
	case bool:
		return strconv.FormatBool(tv)
	case int:
		return strconv.Itoa(tv)
	case int32:
		return strconv.FormatInt(int64(tv), 10)
	case int64:
		return strconv.FormatInt(tv, 10)
	case float32:
		return strconv.FormatFloat(float64(tv), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(tv, 'g', -1, 64)
	case time.Time:
		return formatDateTime(tv)
	case strfmt.DateTime:
		return formatDateTime(time.Time(tv))
	case uuid.UUID:
		return "guid'" + tv.String() + "'"
	default:
		return fmt.Sprintf("%v", tv)
	}
}

// formatDateTime renders an OData datetime literal in UTC.
func formatDateTime(t time.Time) string {
	return "datetime'" + t.UTC().Format(time.RFC3339Nano) + "'"
}
