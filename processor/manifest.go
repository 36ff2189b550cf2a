/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/storagemodels"
)

// Manifest lists tables to create and entities to seed.
type Manifest struct {
	Tables []TableSeed `yaml:"tables"`
}

// TableSeed declares one table. Entities are flat maps whose PartitionKey
// and RowKey entries become the entity keys; every other entry becomes a
// table property.
type TableSeed struct {
	Name     string           `yaml:"name"`
	Mode     string           `yaml:"mode,omitempty"`
	Entities []map[string]any `yaml:"entities,omitempty"`
}

// Result summarizes an Apply run.
type Result struct {
	Tables   int
	Entities int
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes manifest YAML and validates its structure: table names,
// update modes and entity keys. Property value types are checked by the
// store on write.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	for i, tbl := range m.Tables {
		if err := storagemodels.ValidateTableName(tbl.Name); err != nil {
			return fmt.Errorf("tables[%d]: %w", i, err)
		}
		switch tbl.Mode {
		case "", "merge", "replace":
		default:
			return fmt.Errorf("tables[%d]: unsupported mode %q (want merge or replace)", i, tbl.Mode)
		}
		for j, raw := range tbl.Entities {
			if _, _, err := splitKeys(raw); err != nil {
				return fmt.Errorf("tables[%d].entities[%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

// Apply seeds the manifest through store. Tables with entities are created
// on demand by the upsert; tables without entities are created explicitly,
// tolerating ones that already exist.
func (m *Manifest) Apply(ctx context.Context, store datastore.TableStore) (*Result, error) {
	res := &Result{}
	for i, tbl := range m.Tables {
		if len(tbl.Entities) == 0 {
			err := store.CreateTable(ctx, tbl.Name)
			if err != nil && !errors.IsAlreadyExists(err) {
				return res, fmt.Errorf("tables[%d] %q: %w", i, tbl.Name, err)
			}
			res.Tables++
			continue
		}

		entities := make([]storagemodels.Entity, 0, len(tbl.Entities))
		for j, raw := range tbl.Entities {
			e, err := toEntity(raw)
			if err != nil {
				return res, fmt.Errorf("tables[%d].entities[%d]: %w", i, j, err)
			}
			entities = append(entities, e)
		}
		if err := store.UpsertEntities(ctx, tbl.Name, entities, tbl.updateMode()); err != nil {
			return res, fmt.Errorf("tables[%d] %q: %w", i, tbl.Name, err)
		}
		res.Tables++
		res.Entities += len(entities)
	}
	return res, nil
}

func (t TableSeed) updateMode() storagemodels.UpdateMode {
	if t.Mode == "replace" {
		return storagemodels.UpdateModeReplace
	}
	return storagemodels.UpdateModeMerge
}

func splitKeys(raw map[string]any) (partitionKey, rowKey string, err error) {
	pk, ok := raw["PartitionKey"].(string)
	if !ok || pk == "" {
		return "", "", fmt.Errorf("PartitionKey must be a non-empty string")
	}
	rk, ok := raw["RowKey"].(string)
	if !ok || rk == "" {
		return "", "", fmt.Errorf("RowKey must be a non-empty string")
	}
	return pk, rk, nil
}

func toEntity(raw map[string]any) (storagemodels.Entity, error) {
	pk, rk, err := splitKeys(raw)
	if err != nil {
		return storagemodels.Entity{}, err
	}
	props := make(map[string]any, len(raw)-2)
	for k, v := range raw {
		if k == "PartitionKey" || k == "RowKey" {
			continue
		}
		props[k] = v
	}
	return storagemodels.Entity{PartitionKey: pk, RowKey: rk, Properties: props}, nil
}
