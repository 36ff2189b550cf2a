/*
Package datastore defines the core interfaces for TableStore's persistence layer.

The main interface is TableStore, which provides table and entity operations
against one storage account:

	type TableStore interface {
	    ListTables(ctx context.Context) ([]string, error)
	    CreateTable(ctx context.Context, tableName string) error
	    DeleteTable(ctx context.Context, tableName string) error
	    UpsertEntities(ctx context.Context, tableName string, entities []storagemodels.Entity, mode storagemodels.UpdateMode) error
	    DeleteEntity(ctx context.Context, tableName, partitionKey, rowKey string) error
	    SelectEntities(ctx context.Context, tableName, filter string, opts ...storagemodels.QueryOption) (storagemodels.QueryResult, error)
	}

Implementations:
  - azt: Azure Table storage implementation
  - mock: In-memory mock implementation for testing

The package also defines the Logger interface implementations use for
structured trace and error reporting, with default (errors only), verbose
and no-op loggers plus FuncLogger for routing events into a test or an
application logger.
*/
package datastore
