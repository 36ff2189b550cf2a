/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	"github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/filter"
	"github.com/suparena/tablestore/storagemodels"
)

// SelectEntities queries a table with an OData filter expression. Any @name
// placeholders in the filter are resolved against the bound parameters before
// the query is issued. The returned QueryResult is lazy: no request is sent
// until its first NextPage call, and service failures surface from NextPage.
func (c *Client) SelectEntities(ctx context.Context, tableName, flt string, opts ...storagemodels.QueryOption) (storagemodels.QueryResult, error) {
	svc, err := c.ensureConnected("select entities")
	if err != nil {
		return nil, err
	}
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

	listOpts := &aztables.ListEntitiesOptions{
		Filter: to.Ptr(resolved),
	}
	if len(options.Select) > 0 {
		listOpts.Select = to.Ptr(strings.Join(options.Select, ","))
	}
	if options.ResultsPerPage > 0 {
		listOpts.Top = to.Ptr(options.ResultsPerPage)
	}

	table := c.tableClient(svc, tableName)
	c.logger.Trace("selecting entities", map[string]any{"table": tableName, "filter": resolved})
	return &queryResult{
		table: tableName,
		pager: table.NewListEntitiesPager(listOpts),
	}, nil
}

// queryResult adapts the SDK pager to the lazy QueryResult contract.
type queryResult struct {
	table string
	pager *runtime.Pager[aztables.ListEntitiesResponse]
	page  int
}

func (r *queryResult) More() bool {
	return r.pager.More()
}

func (r *queryResult) NextPage(ctx context.Context) (*storagemodels.Page, error) {
	if !r.pager.More() {
		return nil, storagemodels.ErrNoMorePages
	}

	resp, err := r.pager.NextPage(ctx)
	if err != nil {
		return nil, classify("select entities", r.table, err, "table", r.table)
	}

	r.page++
	page := &storagemodels.Page{
		Number:   r.page,
		Entities: make([]storagemodels.Entity, 0, len(resp.Entities)),
	}
	for _, raw := range resp.Entities {
		e, err := unmarshalEntity(raw)
		if err != nil {
			return nil, err
		}
		page.Entities = append(page.Entities, e)
	}
	return page, nil
}
