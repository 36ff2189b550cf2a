/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import "github.com/suparena/tablestore/storagemodels"

// MaxBatchSize is the service limit on entities per transaction.
const MaxBatchSize = 100

// ChunkEntities splits entities into transaction-sized batches while
// preserving submission order. A batch closes when it reaches MaxBatchSize
// or when the next entity's PartitionKey differs from the current run's, so
// interleaved partition keys produce one batch per contiguous run rather
// than one per distinct key.
func ChunkEntities(entities []storagemodels.Entity) []storagemodels.Batch {
	if len(entities) == 0 {
		return nil
	}

	var batches []storagemodels.Batch
	current := storagemodels.Batch{PartitionKey: entities[0].PartitionKey}
	for _, e := range entities {
		if e.PartitionKey != current.PartitionKey || len(current.Entities) == MaxBatchSize {
			batches = append(batches, current)
			current = storagemodels.Batch{PartitionKey: e.PartitionKey}
		}
		current.Entities = append(current.Entities, e)
	}
	return append(batches, current)
}
