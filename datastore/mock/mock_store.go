/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the TableStore interface for testing
package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/filter"
	"github.com/suparena/tablestore/storagemodels"
)

// Store is a mock implementation of datastore.TableStore for testing. It
// keeps tables and entities in memory, honors the same validation and error
// semantics as the Azure implementation, and lets tests inject failures per
// operation.
type Store struct {
	mu         sync.RWMutex
	tables     map[string]*table
	tableOrder []string

	selectFunc func(ctx context.Context, tableName, filter string, opts storagemodels.QueryOptions) ([]storagemodels.Entity, error)

	listError        error
	createError      error
	deleteTableError error
	upsertError      error
	deleteEntityErr  error
	queryError       error
}

type table struct {
	rows  map[string]storagemodels.Entity
	order []string
}

func newTable() *table {
	return &table{rows: make(map[string]storagemodels.Entity)}
}

// New creates a new mock Store
func New() *Store {
	return &Store{tables: make(map[string]*table)}
}

// WithListError makes ListTables return an error
func (m *Store) WithListError(err error) *Store {
	m.listError = err
	return m
}

// WithCreateError makes CreateTable return an error
func (m *Store) WithCreateError(err error) *Store {
	m.createError = err
	return m
}

// WithDeleteTableError makes DeleteTable return an error
func (m *Store) WithDeleteTableError(err error) *Store {
	m.deleteTableError = err
	return m
}

// WithUpsertError makes UpsertEntities return an error
func (m *Store) WithUpsertError(err error) *Store {
	m.upsertError = err
	return m
}

// WithDeleteEntityError makes DeleteEntity return an error
func (m *Store) WithDeleteEntityError(err error) *Store {
	m.deleteEntityErr = err
	return m
}

// WithQueryError makes query results fail lazily: SelectEntities succeeds and
// the error surfaces from the first NextPage call, matching the real store.
func (m *Store) WithQueryError(err error) *Store {
	m.queryError = err
	return m
}

// WithSelectFunc sets a custom select function for testing. It receives the
// resolved filter expression and the assembled query options.
func (m *Store) WithSelectFunc(f func(ctx context.Context, tableName, filter string, opts storagemodels.QueryOptions) ([]storagemodels.Entity, error)) *Store {
	m.selectFunc = f
	return m
}

// ListTables returns the names of every table in creation order.
func (m *Store) ListTables(ctx context.Context) ([]string, error) {
	if m.listError != nil {
		return nil, m.listError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.tableOrder...), nil
}

// CreateTable creates a table, failing with an AlreadyExists error when the
// name is taken.
func (m *Store) CreateTable(ctx context.Context, tableName string) error {
	if m.createError != nil {
		return m.createError
	}
	if err := storagemodels.ValidateTableName(tableName); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.tables[tableName]; exists {
		return errors.NewAlreadyExistsError("table", tableName)
	}
	m.addTableLocked(tableName)
	return nil
}

// DeleteTable removes a table and everything in it.
func (m *Store) DeleteTable(ctx context.Context, tableName string) error {
	if m.deleteTableError != nil {
		return m.deleteTableError
	}
	if err := storagemodels.ValidateTableName(tableName); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.tables[tableName]; !exists {
		return errors.NewNotFoundError("table", tableName)
	}
	delete(m.tables, tableName)
	for i, n := range m.tableOrder {
		if n == tableName {
			m.tableOrder = append(m.tableOrder[:i], m.tableOrder[i+1:]...)
			break
		}
	}
	return nil
}

// UpsertEntities writes entities, creating the table when missing. Merge mode
// overlays the submitted properties on a stored entity; replace mode swaps
// the stored entity out entirely.
func (m *Store) UpsertEntities(ctx context.Context, tableName string, entities []storagemodels.Entity, mode storagemodels.UpdateMode) error {
	if m.upsertError != nil {
		return m.upsertError
	}
	if err := storagemodels.ValidateTableName(tableName); err != nil {
		return err
	}
	if err := storagemodels.ValidateEntities(entities); err != nil {
		return err
	}
	if mode != storagemodels.UpdateModeMerge && mode != storagemodels.UpdateModeReplace {
		return errors.NewInvalidArgumentError("mode", "must be merge or replace")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	tbl, exists := m.tables[tableName]
	if !exists {
		tbl = m.addTableLocked(tableName)
	}
	for _, e := range entities {
		key := entityKey(e.PartitionKey, e.RowKey)
		stored, ok := tbl.rows[key]
		if ok && mode == storagemodels.UpdateModeMerge {
			merged := stored.Clone()
			if merged.Properties == nil {
				merged.Properties = make(map[string]any, len(e.Properties))
			}
			for k, v := range e.Properties {
				merged.Properties[k] = v
			}
			tbl.rows[key] = merged
			continue
		}
		if !ok {
			tbl.order = append(tbl.order, key)
		}
		tbl.rows[key] = e.Clone()
	}
	return nil
}

// DeleteEntity removes one entity, failing with a NotFound error when the
// table or the entity is missing.
func (m *Store) DeleteEntity(ctx context.Context, tableName, partitionKey, rowKey string) error {
	if m.deleteEntityErr != nil {
		return m.deleteEntityErr
	}
	if err := storagemodels.ValidateTableName(tableName); err != nil {
		return err
	}
	if err := storagemodels.ValidateKeys(partitionKey, rowKey); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	tbl, exists := m.tables[tableName]
	if !exists {
		return errors.NewNotFoundError("table", tableName)
	}
	key := entityKey(partitionKey, rowKey)
	if _, ok := tbl.rows[key]; !ok {
		return errors.NewNotFoundError("entity", partitionKey+"/"+rowKey)
	}
	delete(tbl.rows, key)
	for i, k := range tbl.order {
		if k == key {
			tbl.order = append(tbl.order[:i], tbl.order[i+1:]...)
			break
		}
	}
	return nil
}

// SelectEntities resolves filter parameters, then serves the table's
// entities in insertion order, paged by ResultsPerPage. The mock does not
// evaluate filter expressions; use WithSelectFunc when a test needs
// filter-dependent results.
func (m *Store) SelectEntities(ctx context.Context, tableName, flt string, opts ...storagemodels.QueryOption) (storagemodels.QueryResult, error) {
	if err := storagemodels.ValidateTableName(tableName); err != nil {
		return nil, err
	}
	if strings.TrimSpace(flt) == "" {
		return nil, errors.NewInvalidArgumentError("filter", "filter expression must not be empty")
	}

	options := storagemodels.DefaultQueryOptions()
	for _, opt := range opts {
		opt(&options)
	}
	resolved, err := filter.SubstituteParameters(flt, options.Parameters)
	if err != nil {
		return nil, err
	}

	if m.queryError != nil {
		return &result{err: m.queryError}, nil
	}

	var entities []storagemodels.Entity
	if m.selectFunc != nil {
		entities, err = m.selectFunc(ctx, tableName, resolved, options)
		if err != nil {
			return &result{err: err}, nil
		}
	} else {
		m.mu.RLock()
		if tbl, exists := m.tables[tableName]; exists {
			entities = make([]storagemodels.Entity, 0, len(tbl.order))
			for _, key := range tbl.order {
				entities = append(entities, tbl.rows[key].Clone())
			}
		} else {
			m.mu.RUnlock()
			return &result{err: errors.NewNotFoundError("table", tableName)}, nil
		}
		m.mu.RUnlock()
	}

	pageSize := int(options.ResultsPerPage)
	if pageSize <= 0 {
		pageSize = storagemodels.DefaultResultsPerPage
	}
	var pages [][]storagemodels.Entity
	for start := 0; start < len(entities); start += pageSize {
		end := start + pageSize
		if end > len(entities) {
			end = len(entities)
		}
		pages = append(pages, entities[start:end])
	}
	return &result{pages: pages}, nil
}

// result is the mock's lazy QueryResult.
type result struct {
	err   error
	pages [][]storagemodels.Entity
	next  int
}

func (r *result) More() bool {
	if r.err != nil {
		return true
	}
	return r.next < len(r.pages)
}

func (r *result) NextPage(ctx context.Context) (*storagemodels.Page, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.next >= len(r.pages) {
		return nil, storagemodels.ErrNoMorePages
	}
	page := &storagemodels.Page{
		Entities: r.pages[r.next],
		Number:   r.next + 1,
	}
	r.next++
	return page, nil
}

// Helper methods for testing

// SetData replaces a table's contents, creating the table when missing.
func (m *Store) SetData(tableName string, entities []storagemodels.Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tbl, exists := m.tables[tableName]
	if !exists {
		tbl = m.addTableLocked(tableName)
	}
	tbl.rows = make(map[string]storagemodels.Entity, len(entities))
	tbl.order = tbl.order[:0]
	for _, e := range entities {
		key := entityKey(e.PartitionKey, e.RowKey)
		if _, ok := tbl.rows[key]; !ok {
			tbl.order = append(tbl.order, key)
		}
		tbl.rows[key] = e.Clone()
	}
}

// GetData returns a copy of a table's entities in insertion order.
func (m *Store) GetData(tableName string) []storagemodels.Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tbl, exists := m.tables[tableName]
	if !exists {
		return nil
	}
	out := make([]storagemodels.Entity, 0, len(tbl.order))
	for _, key := range tbl.order {
		out = append(out, tbl.rows[key].Clone())
	}
	return out
}

// Count returns the number of entities stored in a table.
func (m *Store) Count(tableName string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tbl, exists := m.tables[tableName]; exists {
		return len(tbl.rows)
	}
	return 0
}

// Clear removes all tables and data.
func (m *Store) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = make(map[string]*table)
	m.tableOrder = nil
}

func (m *Store) addTableLocked(tableName string) *table {
	tbl := newTable()
	m.tables[tableName] = tbl
	m.tableOrder = append(m.tableOrder, tableName)
	return tbl
}

func entityKey(partitionKey, rowKey string) string {
	return partitionKey + "|" + rowKey
}
