/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	"fmt"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/storagemodels"
)

// Client implements datastore.TableStore against an Azure storage account.
// A Client starts disconnected; Connect builds the underlying service client
// and every table or entity operation before that fails with a NotConnected
// error. Connect and Close may be called repeatedly.
type Client struct {
	accountName      string
	accountKey       string
	connectionString string
	endpoint         string
	clientOptions    *aztables.ClientOptions
	logger           datastore.Logger

	mu     sync.RWMutex
	svc    serviceAPI
	tables map[string]tableAPI
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithEndpoint overrides the default https://<account>.table.core.windows.net
// service URL, for sovereign clouds or a local emulator.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithLogger routes the client's trace and error events to l.
func WithLogger(l datastore.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithClientOptions passes SDK-level options (transport, retry policy)
// through to the underlying service client.
func WithClientOptions(opts *aztables.ClientOptions) Option {
	return func(c *Client) {
		c.clientOptions = opts
	}
}

// New returns a disconnected Client for a storage account addressed by
// account name and shared key.
func New(accountName, accountKey string, opts ...Option) (*Client, error) {
	if accountName == "" {
		return nil, errors.NewInvalidArgumentError("accountName", "must be a non-empty string")
	}
	if accountKey == "" {
		return nil, errors.NewInvalidArgumentError("accountKey", "must be a non-empty string")
	}

	c := &Client{
		accountName: accountName,
		accountKey:  accountKey,
		logger:      datastore.NewDefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.endpoint == "" {
		c.endpoint = fmt.Sprintf("https://%s.table.core.windows.net", accountName)
	}
	return c, nil
}

// NewFromConnectionString returns a disconnected Client configured with a
// storage connection string.
func NewFromConnectionString(connectionString string, opts ...Option) (*Client, error) {
	if connectionString == "" {
		return nil, errors.NewInvalidArgumentError("connectionString", "must be a non-empty string")
	}

	c := &Client{
		connectionString: connectionString,
		logger:           datastore.NewDefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Connect builds the service client. Connecting an already connected Client
// is a no-op.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.svc != nil {
		return nil
	}

	var (
		svcClient *aztables.ServiceClient
		err       error
	)
	if c.connectionString != "" {
		svcClient, err = aztables.NewServiceClientFromConnectionString(c.connectionString, c.clientOptions)
	} else {
		cred, cerr := aztables.NewSharedKeyCredential(c.accountName, c.accountKey)
		if cerr != nil {
			return errors.NewInvalidArgumentError("accountKey", cerr.Error())
		}
		svcClient, err = aztables.NewServiceClientWithSharedKey(c.endpoint, cred, c.clientOptions)
	}
	if err != nil {
		return errors.NewTransportError("connect", err)
	}

	c.svc = azService{svcClient}
	c.tables = make(map[string]tableAPI)
	c.logger.Info("connected to table service", map[string]any{"endpoint": c.endpoint})
	return nil
}

// Close drops the service client, returning the Client to the disconnected
// state. Close is idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.svc != nil {
		c.svc = nil
		c.tables = nil
		c.logger.Info("disconnected from table service", nil)
	}
	return nil
}

// Connected reports whether Connect has been called without a matching Close.
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.svc != nil
}

// ensureConnected returns the service handle, or a NotConnected error naming
// the operation that was attempted.
func (c *Client) ensureConnected(op string) (serviceAPI, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.svc == nil {
		return nil, errors.NewNotConnectedError(op)
	}
	return c.svc, nil
}

// tableClient returns a cached per-table client, creating it on first use.
func (c *Client) tableClient(svc serviceAPI, tableName string) tableAPI {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tables[tableName]; ok {
		return t
	}
	t := svc.Table(tableName)
	if c.tables != nil {
		c.tables[tableName] = t
	}
	return t
}

// ListTables returns the names of every table in the account.
func (c *Client) ListTables(ctx context.Context) ([]string, error) {
	svc, err := c.ensureConnected("list tables")
	if err != nil {
		return nil, err
	}

	c.logger.Trace("listing tables", nil)
	var names []string
	pager := svc.NewListTablesPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			werr := classify("list tables", "", err, "", "")
			c.logger.Error("list tables failed", map[string]any{"error": werr.Error()})
			return nil, werr
		}
		for _, t := range page.Tables {
			if t != nil && t.Name != nil {
				names = append(names, *t.Name)
			}
		}
	}
	return names, nil
}

// CreateTable creates a table. Creating a table that already exists fails
// with an AlreadyExists error.
func (c *Client) CreateTable(ctx context.Context, tableName string) error {
	svc, err := c.ensureConnected("create table")
	if err != nil {
		return err
	}
	if err := storagemodels.ValidateTableName(tableName); err != nil {
		return err
	}

	c.logger.Trace("creating table", map[string]any{"table": tableName})
	if _, err := svc.CreateTable(ctx, tableName, nil); err != nil {
		werr := classify("create table", tableName, err, "", "")
		c.logger.Error("create table failed", map[string]any{"table": tableName, "error": werr.Error()})
		return werr
	}
	return nil
}

// DeleteTable deletes a table. The account's tables are listed first so a
// missing table fails with a NotFound error rather than a raw service fault.
func (c *Client) DeleteTable(ctx context.Context, tableName string) error {
	svc, err := c.ensureConnected("delete table")
	if err != nil {
		return err
	}
	if err := storagemodels.ValidateTableName(tableName); err != nil {
		return err
	}

	names, err := c.ListTables(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, n := range names {
		if n == tableName {
			found = true
			break
		}
	}
	if !found {
		return errors.NewNotFoundError("table", tableName)
	}

	c.logger.Trace("deleting table", map[string]any{"table": tableName})
	if _, err := svc.DeleteTable(ctx, tableName, nil); err != nil {
		werr := classify("delete table", tableName, err, "table", tableName)
		c.logger.Error("delete table failed", map[string]any{"table": tableName, "error": werr.Error()})
		return werr
	}
	return nil
}
