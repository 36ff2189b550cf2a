/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// KeyMapRegistry is a registry for Go types and their table key templates.

// KeyMap describes how a Go type derives its PartitionKey and RowKey. Each
// template may embed {Field} macros that expand to the value of that field
// in the value's JSON form.
type KeyMap struct {
	PartitionKey string
	RowKey       string
}

var (
	keyMapRegistry = make(map[reflect.Type]KeyMap)
	mu             sync.RWMutex
)

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// RegisterKeyMap associates a Go type T with its key templates.
func RegisterKeyMap[T any](km KeyMap) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	keyMapRegistry[t] = km
}

// KeyMapFor retrieves the key map for type T, if any.
func KeyMapFor[T any]() (KeyMap, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	km, ok := keyMapRegistry[t]
	return km, ok
}

// Expand renders both key templates against v's JSON representation.
// A macro naming a field that is absent from the JSON form is an error.
func (km KeyMap) Expand(v any) (partitionKey, rowKey string, err error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", "", fmt.Errorf("key map registry: failed to marshal value: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	fields := make(map[string]any)
	if err := dec.Decode(&fields); err != nil {
		return "", "", fmt.Errorf("key map registry: value must marshal to a JSON object: %w", err)
	}

	partitionKey, err = expandTemplate(km.PartitionKey, fields)
	if err != nil {
		return "", "", err
	}
	rowKey, err = expandTemplate(km.RowKey, fields)
	if err != nil {
		return "", "", err
	}
	return partitionKey, rowKey, nil
}

// ExpandString substitutes key for every macro in both templates. It is the
// lookup-side counterpart of Expand for callers that hold a plain string key
// rather than a full value.
func (km KeyMap) ExpandString(key string) (partitionKey, rowKey string) {
	return macroPattern.ReplaceAllString(km.PartitionKey, key),
		macroPattern.ReplaceAllString(km.RowKey, key)
}

func expandTemplate(template string, fields map[string]any) (string, error) {
	var missing string
	expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
		// macro is something like "{ID}"
		name := strings.Trim(macro, "{}")

		val, ok := fields[name]
		if !ok || val == nil {
			if missing == "" {
				missing = name
			}
			return ""
		}
		return stringifyField(val)
	})
	if missing != "" {
		return "", fmt.Errorf("key map registry: template %q references missing field %q", template, missing)
	}
	return expanded, nil
}

// stringifyField converts a decoded JSON value into its key fragment. Numbers
// arrive as json.Number, so integers keep their exact text form.
func stringifyField(v any) string {
	switch tv := v.(type) {
	case string:
		return tv
	case json.Number:
		return tv.String()
	case bool:
		return strconv.FormatBool(tv)
	default:
		return fmt.Sprintf("%v", tv)
	}
}
