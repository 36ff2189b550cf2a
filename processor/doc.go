/*
Package processor loads table seeding manifests for tablestore.

A manifest is a YAML document listing tables to create and entities to
seed. Entities are flat maps: the PartitionKey and RowKey entries become
the entity keys and every other entry becomes a table property.

Manifest Format:

	tables:
	  - name: Players
	    mode: replace
	    entities:
	      - PartitionKey: "PLAYER#emea"
	        RowKey: "p1"
	        Name: "Avery"
	        Rating: 2100
	        Active: true
	  - name: AuditLog

Applying a Manifest:

	m, err := processor.Load("seed.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	res, err := m.Apply(ctx, store)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("Seeded %d tables (%d entities)\n", res.Tables, res.Entities)

Tables listed with entities are created on demand by the upsert. Tables
listed without entities are created explicitly, and ones that already
exist are tolerated so a manifest can be applied repeatedly. The mode
field selects merge (the default) or replace updates.

This keeps environment bootstrap declarative and ensures consistency
between development, CI and demo accounts.
*/
package processor
