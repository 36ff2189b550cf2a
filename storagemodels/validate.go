/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/tablestore/errors"
)

// tableNamePattern is the service naming rule for tables: letters and digits
// only, first character a letter, 3 to 63 characters total.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{2,62}$`)

// ValidateTableName checks a table name against the service naming rules.
func ValidateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return errors.NewInvalidArgumentError("tableName",
			fmt.Sprintf("%q must contain only letters and digits, start with a letter and be 3-63 characters long", name))
	}
	return nil
}

// ValidateKeys checks that both entity keys are non-empty.
func ValidateKeys(partitionKey, rowKey string) error {
	if partitionKey == "" {
		return errors.NewInvalidArgumentError("partitionKey", "must be a non-empty string")
	}
	if rowKey == "" {
		return errors.NewInvalidArgumentError("rowKey", "must be a non-empty string")
	}
	return nil
}

// ValidateEntities checks that the list is non-empty and that every entity
// carries both keys and only supported property value types.
func ValidateEntities(entities []Entity) error {
	if len(entities) == 0 {
		return errors.NewInvalidArgumentError("entities", "must be a non-empty list")
	}
	for i, e := range entities {
		if e.PartitionKey == "" {
			return errors.NewInvalidArgumentError(fmt.Sprintf("entities[%d].PartitionKey", i), "must be a non-empty string")
		}
		if e.RowKey == "" {
			return errors.NewInvalidArgumentError(fmt.Sprintf("entities[%d].RowKey", i), "must be a non-empty string")
		}
		for name, value := range e.Properties {
			if err := validatePropertyValue(value); err != nil {
				return errors.NewInvalidArgumentError(fmt.Sprintf("entities[%d].%s", i, name), err.Error())
			}
		}
	}
	return nil
}

// validatePropertyValue enforces the supported scalar property union.
func validatePropertyValue(v any) error {
	switch tv := v.(type) {
	case string, bool, int, int32, int64, time.Time, strfmt.DateTime, uuid.UUID, []byte:
		return nil
	case float32:
		if math.IsNaN(float64(tv)) || math.IsInf(float64(tv), 0) {
			return fmt.Errorf("float property values must be finite")
		}
		return nil
	case float64:
		if math.IsNaN(tv) || math.IsInf(tv, 0) {
			return fmt.Errorf("float property values must be finite")
		}
		return nil
	case nil:
		return fmt.Errorf("nil property values are not supported")
	default:
		return fmt.Errorf("unsupported property type %T", v)
	}
}
