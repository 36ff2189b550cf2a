/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"testing"
	"time"

	"github.com/suparena/tablestore/errors"
)

func TestSubstituteParameters(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		params map[string]any
		want   string
	}{
		{
			"int parameter",
			"Age ge @age",
			map[string]any{"age": 21},
			"Age ge 21",
		},
		{
			"string parameter quoted and escaped",
			"LastName eq @last",
			map[string]any{"last": "O'Brien"},
			"LastName eq 'O''Brien'",
		},
		{
			"multiple tokens",
			"Age ge @min and Age lt @max",
			map[string]any{"min": 18, "max": 65},
			"Age ge 18 and Age lt 65",
		},
		{
			"same token twice",
			"RowKey eq @id or PartitionKey eq @id",
			map[string]any{"id": "x1"},
			"RowKey eq 'x1' or PartitionKey eq 'x1'",
		},
		{
			"bool parameter",
			"Active eq @active",
			map[string]any{"active": false},
			"Active eq false",
		},
		{
			"datetime parameter",
			"Joined gt @since",
			map[string]any{"since": time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			"Joined gt datetime'2024-03-01T00:00:00Z'",
		},
		{
			"token inside string literal untouched",
			"Email eq 'user@example.com'",
			nil,
			"Email eq 'user@example.com'",
		},
		{
			"escaped quote does not end the literal",
			"Name eq 'O''Brien @ work' and Age ge @age",
			map[string]any{"age": 30},
			"Name eq 'O''Brien @ work' and Age ge 30",
		},
		{
			"no tokens",
			"Age ge 30",
			nil,
			"Age ge 30",
		},
		{
			"unused params ignored",
			"Age ge @age",
			map[string]any{"age": 21, "extra": "x"},
			"Age ge 21",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SubstituteParameters(tt.expr, tt.params)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSubstituteParametersErrors(t *testing.T) {
	t.Run("unbound token", func(t *testing.T) {
		_, err := SubstituteParameters("Age ge @age", nil)
		if err == nil {
			t.Fatal("expected error for unbound token")
		}
		if !errors.IsInvalidArgument(err) {
			t.Errorf("expected InvalidArgumentError, got %v", err)
		}
	})

	t.Run("stray @", func(t *testing.T) {
		_, err := SubstituteParameters("Age ge @ 21", map[string]any{"age": 21})
		if err == nil {
			t.Fatal("expected error for stray @")
		}
		if !errors.IsInvalidArgument(err) {
			t.Errorf("expected InvalidArgumentError, got %v", err)
		}
	})
}
