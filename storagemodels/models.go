/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"context"
	"errors"
)

// UpdateMode selects how an upsert treats an entity that already exists.
type UpdateMode string

const (
	// UpdateModeMerge updates only the properties present in the submitted
	// entity, leaving other stored properties untouched.
	UpdateModeMerge UpdateMode = "merge"

	// UpdateModeReplace replaces the stored entity with the submitted one,
	// dropping any stored properties the submitted entity does not carry.
	UpdateModeReplace UpdateMode = "replace"
)

// Entity is a single row of a table: two required key strings plus an open
// set of scalar properties. Supported property value types are string, bool,
// int, int32, int64, float32, float64, time.Time, strfmt.DateTime, uuid.UUID
// and []byte. Nested structures are not supported.
type Entity struct {
	// PartitionKey groups entities that can share a transaction. Required.
	PartitionKey string
	// RowKey identifies the entity within its partition. Required.
	RowKey string
	// Properties holds the entity's remaining values, keyed by property name.
	Properties map[string]any
}

// Property returns the named property value and whether it is present.
func (e Entity) Property(name string) (any, bool) {
	v, ok := e.Properties[name]
	return v, ok
}

// Clone returns a copy of the entity with its own Properties map.
func (e Entity) Clone() Entity {
	out := Entity{PartitionKey: e.PartitionKey, RowKey: e.RowKey}
	if e.Properties != nil {
		out.Properties = make(map[string]any, len(e.Properties))
		for k, v := range e.Properties {
			out.Properties[k] = v
		}
	}
	return out
}

// Batch is one transaction-sized group of entities. Every entity in a Batch
// shares PartitionKey, and a Batch never exceeds the service's limit of 100
// entities per transaction.
type Batch struct {
	// PartitionKey common to all entities in the batch.
	PartitionKey string
	// Entities in their original submission order.
	Entities []Entity
}

// Page is one page of query results.
type Page struct {
	// Entities returned for this page, in service order.
	Entities []Entity
	// Number is the 1-based position of the page in the result sequence.
	Number int
}

// ErrNoMorePages is returned by QueryResult.NextPage once the final page has
// been consumed. More() returning false signals the same condition.
var ErrNoMorePages = errors.New("no more pages")

// QueryResult is a lazy, forward-only sequence of pages. Each NextPage call
// fetches one page synchronously; pages already yielded are never re-fetched.
// Remote failures surface from NextPage, not from the call that produced the
// QueryResult.
type QueryResult interface {
	// More reports whether another page is available.
	More() bool
	// NextPage fetches the next page. After the final page it returns
	// ErrNoMorePages.
	NextPage(ctx context.Context) (*Page, error)
}
