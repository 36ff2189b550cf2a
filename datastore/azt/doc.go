/*
Package azt provides the Azure Table storage implementation of the TableStore interface.

The Client supports:
  - Shared key and connection string authentication
  - Batched upserts that respect the 100-entity transaction limit
  - Merge and replace update modes
  - Lazy, page-at-a-time query results
  - Filter parameter substitution (@name placeholders)
  - Property name sanitization for the service's naming rules

Key Features:

Lifecycle:
A Client is constructed disconnected and connects explicitly:

	client, err := azt.New(accountName, accountKey)
	if err != nil { ... }
	if err := client.Connect(); err != nil { ... }
	defer client.Close()

Batching:
UpsertEntities groups entities into transactions of at most 100, splitting
whenever the partition key changes, and submits them in order. A failing
transaction aborts the call with a BatchError naming the batch; earlier
batches stay written.

Queries:
SelectEntities returns a lazy QueryResult. Pages are fetched one at a time
and remote failures surface from NextPage:

	res, err := client.SelectEntities(ctx, "People", "Age ge @age",
	    storagemodels.WithParameters(map[string]any{"age": 21}))
	for res.More() {
	    page, err := res.NextPage(ctx)
	    ...
	}

For usage examples, see the integration tests and documentation.
*/
package azt
