/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	"github.com/suparena/tablestore/errors"
)

// serviceAPI is the slice of the Azure table service the client depends on.
// Production wraps *aztables.ServiceClient; tests substitute an in-memory fake.
type serviceAPI interface {
	CreateTable(ctx context.Context, tableName string, options *aztables.CreateTableOptions) (aztables.CreateTableResponse, error)
	DeleteTable(ctx context.Context, tableName string, options *aztables.DeleteTableOptions) (aztables.DeleteTableResponse, error)
	NewListTablesPager(options *aztables.ListTablesOptions) *runtime.Pager[aztables.ListTablesResponse]
	Table(tableName string) tableAPI
}

// tableAPI is the slice of a single table's client the store depends on.
type tableAPI interface {
	SubmitTransaction(ctx context.Context, actions []aztables.TransactionAction, options *aztables.SubmitTransactionOptions) (aztables.TransactionResponse, error)
	DeleteEntity(ctx context.Context, partitionKey, rowKey string, options *aztables.DeleteEntityOptions) (aztables.DeleteEntityResponse, error)
	NewListEntitiesPager(options *aztables.ListEntitiesOptions) *runtime.Pager[aztables.ListEntitiesResponse]
}

// azService adapts *aztables.ServiceClient to serviceAPI.
type azService struct {
	*aztables.ServiceClient
}

func (s azService) Table(tableName string) tableAPI {
	return s.NewClient(tableName)
}

// classify maps an SDK error onto the store's error taxonomy. A 404 becomes
// a NotFoundError for notFoundKind/notFoundKey when a key is given; a 409
// carrying the TableAlreadyExists code becomes an AlreadyExistsError. Every
// other service response becomes a ServiceError, and anything that never
// reached the service becomes a TransportError.
func classify(op, table string, err error, notFoundKind, notFoundKey string) error {
	var respErr *azcore.ResponseError
	if !stderrors.As(err, &respErr) {
		return errors.NewTransportError(op, err)
	}
	switch {
	case respErr.StatusCode == http.StatusNotFound && notFoundKey != "":
		return errors.NewNotFoundError(notFoundKind, notFoundKey)
	case respErr.StatusCode == http.StatusConflict && respErr.ErrorCode == string(aztables.TableAlreadyExists):
		return errors.NewAlreadyExistsError("table", table)
	}
	return errors.NewServiceError(op, table, respErr.StatusCode, respErr.ErrorCode, err)
}
