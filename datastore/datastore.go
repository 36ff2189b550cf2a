/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/tablestore/storagemodels"
)

type TableStore interface {
	ListTables(ctx context.Context) ([]string, error)

	CreateTable(ctx context.Context, tableName string) error

	DeleteTable(ctx context.Context, tableName string) error

	UpsertEntities(ctx context.Context, tableName string, entities []storagemodels.Entity, mode storagemodels.UpdateMode) error

	DeleteEntity(ctx context.Context, tableName, partitionKey, rowKey string) error

	SelectEntities(ctx context.Context, tableName, filter string, opts ...storagemodels.QueryOption) (storagemodels.QueryResult, error)
}
