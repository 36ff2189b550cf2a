/*
Package storagemodels defines the data structures used throughout TableStore.

Key Types:

Entity:
A single table row, two required keys plus free-form scalar properties:

	e := Entity{
	    PartitionKey: "Smith",
	    RowKey:       "john",
	    Properties: map[string]any{
	        "Age":    30,
	        "Email":  "john@example.com",
	        "Active": true,
	    },
	}

Batch:
One transaction-sized group of entities sharing a partition key. Batches are
produced by the batch chunker and never exceed 100 entities.

QueryResult:
A lazy, forward-only page sequence returned by SelectEntities:

	res, err := store.SelectEntities(ctx, "People", flt)
	for res.More() {
	    page, err := res.NextPage(ctx)
	    ...
	}

QueryOptions:
Configuration for a query, built with functional options:

	opts := []QueryOption{
	    WithParameters(map[string]any{"age": 21}),
	    WithSelect("LastName", "Age"),
	    WithResultsPerPage(500),
	}

The Validate functions enforce the service's naming and typing rules before
any request is sent, so malformed input fails fast with an InvalidArgument
error instead of a round trip.

These types provide a consistent interface across different storage implementations.
*/
package storagemodels
