/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/filter"
	"github.com/suparena/tablestore/registry"
	"github.com/suparena/tablestore/storagemodels"
)

// TableSet provides type-safe access to one table for a specific type T.
// Values are converted to entities through their JSON form; PartitionKey and
// RowKey are derived from the key map registered for T.
type TableSet[T any] struct {
	store datastore.TableStore
	table string
	keys  registry.KeyMap
}

// NewTableSet builds a typed view over tableName backed by store. T must have
// a key map registered via registry.RegisterKeyMap.
func NewTableSet[T any](store datastore.TableStore, tableName string) (*TableSet[T], error) {
	if err := storagemodels.ValidateTableName(tableName); err != nil {
		return nil, err
	}
	km, ok := registry.KeyMapFor[T]()
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w %T", errors.ErrNoKeyMap, zero)
	}
	return &TableSet[T]{store: store, table: tableName, keys: km}, nil
}

// Table returns the name of the underlying table.
func (ts *TableSet[T]) Table() string {
	return ts.table
}

// Upsert writes the given values, creating the table when missing. Each value
// carries all of its fields, so writes use replace mode.
func (ts *TableSet[T]) Upsert(ctx context.Context, items ...T) error {
	if len(items) == 0 {
		return errors.NewInvalidArgumentError("items", "at least one value is required")
	}
	entities := make([]storagemodels.Entity, 0, len(items))
	for i, item := range items {
		e, err := ts.toEntity(item)
		if err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
		entities = append(entities, e)
	}
	return ts.store.UpsertEntities(ctx, ts.table, entities, storagemodels.UpdateModeReplace)
}

// Get fetches the value whose keys expand from keyInput, which may be a value
// of T or any struct or map carrying the fields the key templates reference.
func (ts *TableSet[T]) Get(ctx context.Context, keyInput any) (*T, error) {
	pk, rk, err := ts.keys.Expand(keyInput)
	if err != nil {
		return nil, err
	}

	flt := filter.New().
		WithColumn("PartitionKey").WithOperator(filter.Equal).WithValue(pk).
		WithOperator(filter.And).
		WithColumn("RowKey").WithOperator(filter.Equal).WithValue(rk).
		Build()
	res, err := ts.store.SelectEntities(ctx, ts.table, flt)
	if err != nil {
		return nil, err
	}
	for res.More() {
		page, err := res.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range page.Entities {
			if e.PartitionKey == pk && e.RowKey == rk {
				return ts.fromEntity(e)
			}
		}
	}
	return nil, errors.NewNotFoundError("entity", pk+"/"+rk)
}

// Query runs a filter over the table and decodes every matching entity.
func (ts *TableSet[T]) Query(ctx context.Context, flt string, opts ...storagemodels.QueryOption) ([]T, error) {
	res, err := ts.store.SelectEntities(ctx, ts.table, flt, opts...)
	if err != nil {
		return nil, err
	}

	var items []T
	for res.More() {
		page, err := res.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range page.Entities {
			item, err := ts.fromEntity(e)
			if err != nil {
				return nil, err
			}
			items = append(items, *item)
		}
	}
	return items, nil
}

// Delete removes the value whose keys expand from keyInput.
func (ts *TableSet[T]) Delete(ctx context.Context, keyInput any) error {
	pk, rk, err := ts.keys.Expand(keyInput)
	if err != nil {
		return err
	}
	return ts.store.DeleteEntity(ctx, ts.table, pk, rk)
}

// toEntity renders item as an entity: keys from the registered templates,
// properties from the JSON fields. Integral numbers decode as int64 so the
// store annotates them as Edm.Int64.
func (ts *TableSet[T]) toEntity(item T) (storagemodels.Entity, error) {
	pk, rk, err := ts.keys.Expand(item)
	if err != nil {
		return storagemodels.Entity{}, err
	}

	data, err := json.Marshal(item)
	if err != nil {
		return storagemodels.Entity{}, fmt.Errorf("failed to marshal %T: %w", item, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	fields := make(map[string]any)
	if err := dec.Decode(&fields); err != nil {
		return storagemodels.Entity{}, fmt.Errorf("%T must marshal to a JSON object: %w", item, err)
	}

	props := make(map[string]any, len(fields))
	for name, value := range fields {
		// Keys live outside the property map.
		if name == "PartitionKey" || name == "RowKey" || value == nil {
			continue
		}
		switch tv := value.(type) {
		case json.Number:
			if n, err := tv.Int64(); err == nil {
				props[name] = n
			} else if f, err := tv.Float64(); err == nil {
				props[name] = f
			} else {
				props[name] = tv.String()
			}
		case string, bool:
			props[name] = tv
		default:
			return storagemodels.Entity{}, errors.NewInvalidArgumentError(name, "nested values are not supported in table properties")
		}
	}
	return storagemodels.Entity{PartitionKey: pk, RowKey: rk, Properties: props}, nil
}

// fromEntity decodes an entity's properties back into a value of T. The
// partition and row keys are included so structs carrying them as fields
// round-trip.
func (ts *TableSet[T]) fromEntity(e storagemodels.Entity) (*T, error) {
	fields := make(map[string]any, len(e.Properties)+2)
	for name, value := range e.Properties {
		fields[name] = value
	}
	fields["PartitionKey"] = e.PartitionKey
	fields["RowKey"] = e.RowKey

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity %q/%q: %w", e.PartitionKey, e.RowKey, err)
	}
	item := new(T)
	if err := json.Unmarshal(data, item); err != nil {
		return nil, fmt.Errorf("failed to decode entity %q/%q into %T: %w", e.PartitionKey, e.RowKey, *item, err)
	}
	return item, nil
}
