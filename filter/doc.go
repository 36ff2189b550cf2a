/*
Package filter builds OData filter expressions for table queries.

The Builder is immutable. Each With method returns a new Builder, so a shared
prefix can branch into independent filters without copying:

	base := filter.New().WithColumn("LastName")
	smiths := base.WithOperator(filter.Equal).WithValue("Smith").Build()
	others := base.WithOperator(filter.NotEqual).WithValue("Smith").Build()

Values are serialized per the service's literal rules: strings single-quoted
with embedded quotes doubled, booleans lowercase, numbers bare, times as
datetime'...' literals in UTC.

Expressions may carry @name placeholders that SubstituteParameters resolves
at query time:

	expr := "Age ge @age and LastName eq @last"
	resolved, err := filter.SubstituteParameters(expr, map[string]any{
	    "age":  21,
	    "last": "O'Brien",
	})
	// Age ge 21 and LastName eq 'O''Brien'

Placeholders inside quoted string literals are never touched.
*/
package filter
