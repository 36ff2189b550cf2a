/*
Package tablestore provides a convenience layer over Azure Table Storage for Go
applications, wrapping the official aztables SDK with input validation,
transaction-safe batching, and consistent error reporting.

The library leaves durability, indexing, partitioning, and transport entirely
to the managed service; what it adds is the plumbing around it:
  - Validated table lifecycle operations (create/list/delete)
  - Batched entity upserts honoring the service's 100-entity,
    same-partition transaction rule
  - An immutable fluent builder for OData filter expressions with
    injection-safe @name parameter substitution
  - Lazy, pull-based query results mirroring the service's pagination
  - Semantic error types for better error handling
  - A generic typed layer deriving keys from per-type templates
  - Thread-safe management of named store handles
  - An in-memory mock implementation for testing

Basic Usage:

	// Connect to a storage account
	client, _ := azt.New(accountName, accountKey)
	if err := client.Connect(); err != nil {
		log.Fatal(err)
	}

	// Write entities; the table is created on demand
	entities := []storagemodels.Entity{{
		PartitionKey: "Smith",
		RowKey:       "john",
		Properties:   map[string]any{"Age": 30},
	}}
	err := client.UpsertEntities(ctx, "People", entities, storagemodels.UpdateModeMerge)

	// Query with a parameterized filter
	res, _ := client.SelectEntities(ctx, "People", "Age ge @age",
		storagemodels.WithParameters(map[string]any{"age": 21}))
	for res.More() {
		page, _ := res.NextPage(ctx)
		...
	}

Typed Access:

	registry.RegisterKeyMap[Customer](registry.KeyMap{
		PartitionKey: "CUSTOMER#{Tier}",
		RowKey:       "{Id}",
	})

	customers, _ := tablestore.NewTableSet[Customer](client, "Customers")
	err := customers.Upsert(ctx, Customer{Id: "c1", Tier: "gold"})

For more information, see the documentation at https://github.com/suparena/tablestore
*/
package tablestore
