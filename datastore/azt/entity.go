/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/storagemodels"
)

// UpsertEntities writes entities in transaction batches. The table is created
// first when it does not exist. Entities are chunked in submission order, one
// transaction per partition-key run of at most 100 entities; the first failing
// batch aborts the call and batches already submitted stay written.
func (c *Client) UpsertEntities(ctx context.Context, tableName string, entities []storagemodels.Entity, mode storagemodels.UpdateMode) error {
	svc, err := c.ensureConnected("upsert entities")
	if err != nil {
		return err
	}
	if err := storagemodels.ValidateTableName(tableName); err != nil {
		return err
	}
	if err := storagemodels.ValidateEntities(entities); err != nil {
		return err
	}
	actionType, err := transactionType(mode)
	if err != nil {
		return err
	}

	if _, err := svc.CreateTable(ctx, tableName, nil); err != nil {
		werr := classify("create table", tableName, err, "", "")
		if !errors.IsAlreadyExists(werr) {
			c.logger.Error("create table failed", map[string]any{"table": tableName, "error": werr.Error()})
			return werr
		}
	}

	table := c.tableClient(svc, tableName)
	batches := ChunkEntities(entities)
	c.logger.Trace("submitting entity batches", map[string]any{
		"table":    tableName,
		"entities": len(entities),
		"batches":  len(batches),
		"mode":     string(mode),
	})

	for i, batch := range batches {
		actions := make([]aztables.TransactionAction, 0, len(batch.Entities))
		for _, e := range batch.Entities {
			payload, err := marshalEntity(e)
			if err != nil {
				return errors.NewBatchError(tableName, i, batch.PartitionKey, len(batch.Entities), err)
			}
			actions = append(actions, aztables.TransactionAction{
				ActionType: actionType,
				Entity:     payload,
			})
		}
		if _, err := table.SubmitTransaction(ctx, actions, nil); err != nil {
			cause := classify("submit transaction", tableName, err, "", "")
			werr := errors.NewBatchError(tableName, i, batch.PartitionKey, len(batch.Entities), cause)
			c.logger.Error("entity batch failed", map[string]any{
				"table":        tableName,
				"batch":        i,
				"partitionKey": batch.PartitionKey,
				"error":        werr.Error(),
			})
			return werr
		}
	}
	return nil
}

// DeleteEntity removes a single entity. A missing entity or table fails with
// a NotFound error.
func (c *Client) DeleteEntity(ctx context.Context, tableName, partitionKey, rowKey string) error {
	svc, err := c.ensureConnected("delete entity")
	if err != nil {
		return err
	}
	if err := storagemodels.ValidateTableName(tableName); err != nil {
		return err
	}
	if err := storagemodels.ValidateKeys(partitionKey, rowKey); err != nil {
		return err
	}

	table := c.tableClient(svc, tableName)
	c.logger.Trace("deleting entity", map[string]any{
		"table":        tableName,
		"partitionKey": partitionKey,
		"rowKey":       rowKey,
	})
	if _, err := table.DeleteEntity(ctx, partitionKey, rowKey, nil); err != nil {
		werr := classify("delete entity", tableName, err, "entity", partitionKey+"/"+rowKey)
		c.logger.Error("delete entity failed", map[string]any{
			"table":        tableName,
			"partitionKey": partitionKey,
			"rowKey":       rowKey,
			"error":        werr.Error(),
		})
		return werr
	}
	return nil
}

// transactionType maps an update mode to the transaction action the service
// expects. Both modes insert the entity when it does not exist yet.
func transactionType(mode storagemodels.UpdateMode) (aztables.TransactionType, error) {
	switch mode {
	case storagemodels.UpdateModeMerge:
		return aztables.TransactionTypeInsertMerge, nil
	case storagemodels.UpdateModeReplace:
		return aztables.TransactionTypeInsertReplace, nil
	}
	return "", errors.NewInvalidArgumentError("mode", fmt.Sprintf("unsupported update mode %q", mode))
}

var invalidPropertyChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// sanitizePropertyName replaces characters the table service rejects in
// property names with underscores.
func sanitizePropertyName(name string) string {
	return invalidPropertyChars.ReplaceAllString(name, "_")
}

// marshalEntity renders an Entity as the JSON document the service expects,
// wrapping values that need EDM type annotations.
func marshalEntity(e storagemodels.Entity) ([]byte, error) {
	props := make(map[string]any, len(e.Properties))
	for name, value := range e.Properties {
		props[sanitizePropertyName(name)] = edmValue(value)
	}
	edm := aztables.EDMEntity{
		Entity: aztables.Entity{
			PartitionKey: e.PartitionKey,
			RowKey:       e.RowKey,
		},
		Properties: props,
	}
	data, err := json.Marshal(edm)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity %q/%q: %w", e.PartitionKey, e.RowKey, err)
	}
	return data, nil
}

// unmarshalEntity converts a raw service document back into an Entity. OData
// annotations are dropped and a non-zero server timestamp surfaces as the
// Timestamp property.
func unmarshalEntity(data []byte) (storagemodels.Entity, error) {
	var edm aztables.EDMEntity
	if err := json.Unmarshal(data, &edm); err != nil {
		return storagemodels.Entity{}, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	e := storagemodels.Entity{
		PartitionKey: edm.PartitionKey,
		RowKey:       edm.RowKey,
		Properties:   make(map[string]any, len(edm.Properties)),
	}
	for name, value := range edm.Properties {
		if strings.Contains(name, "odata.") {
			continue
		}
		e.Properties[name] = goValue(value)
	}
	if ts := time.Time(edm.Timestamp); !ts.IsZero() {
		e.Properties["Timestamp"] = ts
	}
	return e, nil
}

// edmValue wraps a Go value in the EDM marker type the SDK serializes with a
// type annotation. Plain strings, bools, int32s and floats need none.
func edmValue(v any) any {
	switch tv := v.(type) {
	case int:
		return aztables.EDMInt64(tv)
	case int64:
		return aztables.EDMInt64(tv)
	case float32:
		return float64(tv)
	case time.Time:
		return aztables.EDMDateTime(tv)
	case strfmt.DateTime:
		return aztables.EDMDateTime(time.Time(tv))
	case uuid.UUID:
		return aztables.EDMGUID(tv.String())
	case []byte:
		return aztables.EDMBinary(tv)
	default:
		return tv
	}
}

// goValue unwraps EDM marker types into plain Go values.
func goValue(v any) any {
	switch tv := v.(type) {
	case aztables.EDMInt64:
		return int64(tv)
	case aztables.EDMDateTime:
		return time.Time(tv)
	case aztables.EDMGUID:
		if id, err := uuid.Parse(string(tv)); err == nil {
			return id
		}
		return string(tv)
	case aztables.EDMBinary:
		return []byte(tv)
	default:
		return tv
	}
}
