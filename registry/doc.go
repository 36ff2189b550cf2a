/*
Package registry manages key map registration for TableStore.

A KeyMap associates a Go type with the templates that derive its table keys,
so typed table sets can compute PartitionKey and RowKey from a value instead
of requiring callers to pass keys around:

	keyMap := registry.KeyMap{
	    PartitionKey: "USER#{TenantID}",
	    RowKey:       "{ID}",
	}
	registry.RegisterKeyMap[User](keyMap)

Templates expand against the value's JSON form, so the macro names follow the
type's json tags:

	pk, rk, err := keyMap.Expand(User{TenantID: "acme", ID: "u42"})
	// pk = "USER#acme", rk = "u42"

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
