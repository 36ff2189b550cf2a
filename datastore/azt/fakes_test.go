/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	"github.com/suparena/tablestore/datastore"
)

// respError builds the kind of error the SDK surfaces for a failed request.
func respError(status int, code string) error {
	return &azcore.ResponseError{StatusCode: status, ErrorCode: code}
}

// newTestClient returns a connected Client wired to the fake service.
func newTestClient(fs *fakeService) *Client {
	return &Client{
		logger: datastore.NewNopLogger(),
		svc:    fs,
		tables: make(map[string]tableAPI),
	}
}

// fakeService implements serviceAPI in memory. Table handles persist across
// create and delete so cached per-table clients keep working, mirroring the
// SDK, and existence is checked per operation.
type fakeService struct {
	mu       sync.Mutex
	existing map[string]bool
	order    []string
	handles  map[string]*fakeTable

	createCalls []string
	deleteCalls []string
	createErr   error
	deleteErr   error
	listErr     error

	// tables per listing page; 0 means everything in one page
	listPageSize int
}

func newFakeService(tableNames ...string) *fakeService {
	fs := &fakeService{
		existing: make(map[string]bool),
		handles:  make(map[string]*fakeTable),
	}
	for _, name := range tableNames {
		fs.addTable(name)
	}
	return fs
}

func (f *fakeService) addTable(name string) {
	if !f.existing[name] {
		f.existing[name] = true
		f.order = append(f.order, name)
	}
}

func (f *fakeService) removeTable(name string) {
	delete(f.existing, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// handle returns the persistent fake table client for name.
func (f *fakeService) handle(name string) *fakeTable {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handleLocked(name)
}

func (f *fakeService) handleLocked(name string) *fakeTable {
	if h, ok := f.handles[name]; ok {
		return h
	}
	h := &fakeTable{svc: f, name: name, entities: make(map[string][]byte), failBatch: -1}
	f.handles[name] = h
	return h
}

func (f *fakeService) CreateTable(_ context.Context, name string, _ *aztables.CreateTableOptions) (aztables.CreateTableResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls = append(f.createCalls, name)
	if f.createErr != nil {
		return aztables.CreateTableResponse{}, f.createErr
	}
	if f.existing[name] {
		return aztables.CreateTableResponse{}, respError(http.StatusConflict, string(aztables.TableAlreadyExists))
	}
	f.addTable(name)
	return aztables.CreateTableResponse{}, nil
}

func (f *fakeService) DeleteTable(_ context.Context, name string, _ *aztables.DeleteTableOptions) (aztables.DeleteTableResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls = append(f.deleteCalls, name)
	if f.deleteErr != nil {
		return aztables.DeleteTableResponse{}, f.deleteErr
	}
	if !f.existing[name] {
		return aztables.DeleteTableResponse{}, respError(http.StatusNotFound, "ResourceNotFound")
	}
	f.removeTable(name)
	if h, ok := f.handles[name]; ok {
		h.entities = make(map[string][]byte)
		h.entityOrder = nil
	}
	return aztables.DeleteTableResponse{}, nil
}

func (f *fakeService) NewListTablesPager(_ *aztables.ListTablesOptions) *runtime.Pager[aztables.ListTablesResponse] {
	f.mu.Lock()
	names := append([]string(nil), f.order...)
	pageSize := f.listPageSize
	listErr := f.listErr
	f.mu.Unlock()

	if pageSize <= 0 {
		pageSize = len(names)
		if pageSize == 0 {
			pageSize = 1
		}
	}
	offset := 0
	return runtime.NewPager(runtime.PagingHandler[aztables.ListTablesResponse]{
		More: func(resp aztables.ListTablesResponse) bool {
			return resp.NextTableName != nil
		},
		Fetcher: func(_ context.Context, _ *aztables.ListTablesResponse) (aztables.ListTablesResponse, error) {
			if listErr != nil {
				return aztables.ListTablesResponse{}, listErr
			}
			end := offset + pageSize
			if end > len(names) {
				end = len(names)
			}
			var tables []*aztables.TableProperties
			for _, n := range names[offset:end] {
				name := n
				tables = append(tables, &aztables.TableProperties{Name: &name})
			}
			offset = end
			resp := aztables.ListTablesResponse{Tables: tables}
			if offset < len(names) {
				resp.NextTableName = to.Ptr(names[offset])
			}
			return resp, nil
		},
	})
}

func (f *fakeService) Table(name string) tableAPI {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handleLocked(name)
}

// fakeTable implements tableAPI in memory, keyed by "pk|rk".
type fakeTable struct {
	svc  *fakeService
	name string

	submitErr error
	// 0-based transaction index at which submitErr fires; -1 fires always
	failBatch   int
	submitted   [][]aztables.TransactionAction
	deleteErr   error
	deleteCalls []string
	listErr     error
	listOpts    []*aztables.ListEntitiesOptions

	// entities per listing page; 0 means everything in one page
	entityPageSize int

	entities    map[string][]byte
	entityOrder []string
}

func (t *fakeTable) SubmitTransaction(_ context.Context, actions []aztables.TransactionAction, _ *aztables.SubmitTransactionOptions) (aztables.TransactionResponse, error) {
	t.svc.mu.Lock()
	defer t.svc.mu.Unlock()
	idx := len(t.submitted)
	t.submitted = append(t.submitted, actions)
	if !t.svc.existing[t.name] {
		return aztables.TransactionResponse{}, respError(http.StatusNotFound, "TableNotFound")
	}
	if t.submitErr != nil && (t.failBatch < 0 || t.failBatch == idx) {
		return aztables.TransactionResponse{}, t.submitErr
	}
	for _, a := range actions {
		var edm aztables.EDMEntity
		if err := json.Unmarshal(a.Entity, &edm); err != nil {
			return aztables.TransactionResponse{}, err
		}
		key := edm.PartitionKey + "|" + edm.RowKey
		if _, ok := t.entities[key]; !ok {
			t.entityOrder = append(t.entityOrder, key)
		}
		t.entities[key] = a.Entity
	}
	return aztables.TransactionResponse{}, nil
}

func (t *fakeTable) DeleteEntity(_ context.Context, partitionKey, rowKey string, _ *aztables.DeleteEntityOptions) (aztables.DeleteEntityResponse, error) {
	t.svc.mu.Lock()
	defer t.svc.mu.Unlock()
	key := partitionKey + "|" + rowKey
	t.deleteCalls = append(t.deleteCalls, key)
	if t.deleteErr != nil {
		return aztables.DeleteEntityResponse{}, t.deleteErr
	}
	if !t.svc.existing[t.name] {
		return aztables.DeleteEntityResponse{}, respError(http.StatusNotFound, "TableNotFound")
	}
	if _, ok := t.entities[key]; !ok {
		return aztables.DeleteEntityResponse{}, respError(http.StatusNotFound, "ResourceNotFound")
	}
	delete(t.entities, key)
	for i, k := range t.entityOrder {
		if k == key {
			t.entityOrder = append(t.entityOrder[:i], t.entityOrder[i+1:]...)
			break
		}
	}
	return aztables.DeleteEntityResponse{}, nil
}

func (t *fakeTable) NewListEntitiesPager(opts *aztables.ListEntitiesOptions) *runtime.Pager[aztables.ListEntitiesResponse] {
	t.svc.mu.Lock()
	t.listOpts = append(t.listOpts, opts)
	payloads := make([][]byte, 0, len(t.entityOrder))
	for _, k := range t.entityOrder {
		payloads = append(payloads, t.entities[k])
	}
	pageSize := t.entityPageSize
	listErr := t.listErr
	exists := t.svc.existing[t.name]
	t.svc.mu.Unlock()

	if pageSize <= 0 {
		pageSize = len(payloads)
		if pageSize == 0 {
			pageSize = 1
		}
	}
	offset := 0
	return runtime.NewPager(runtime.PagingHandler[aztables.ListEntitiesResponse]{
		More: func(resp aztables.ListEntitiesResponse) bool {
			return resp.NextPartitionKey != nil
		},
		Fetcher: func(_ context.Context, _ *aztables.ListEntitiesResponse) (aztables.ListEntitiesResponse, error) {
			if listErr != nil {
				return aztables.ListEntitiesResponse{}, listErr
			}
			if !exists {
				return aztables.ListEntitiesResponse{}, respError(http.StatusNotFound, "TableNotFound")
			}
			end := offset + pageSize
			if end > len(payloads) {
				end = len(payloads)
			}
			resp := aztables.ListEntitiesResponse{Entities: payloads[offset:end]}
			offset = end
			if offset < len(payloads) {
				resp.NextPartitionKey = to.Ptr("next")
				resp.NextRowKey = to.Ptr("next")
			}
			return resp, nil
		},
	})
}
