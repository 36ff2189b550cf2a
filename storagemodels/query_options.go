package storagemodels

// DefaultResultsPerPage is the page size used when no override is given.
const DefaultResultsPerPage = 1000

// QueryOptions configures a SelectEntities call
type QueryOptions struct {
	// Parameters are bound to @name tokens in the filter expression
	Parameters map[string]any

	// Select limits the returned properties to the named columns.
	// Empty means all properties.
	Select []string

	// ResultsPerPage is the maximum number of entities per page
	ResultsPerPage int32
}

// QueryOption is a function that modifies QueryOptions
type QueryOption func(*QueryOptions)

// DefaultQueryOptions returns default query options
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		ResultsPerPage: DefaultResultsPerPage,
	}
}

// WithParameters binds values to @name tokens in the filter expression
func WithParameters(params map[string]any) QueryOption {
	return func(o *QueryOptions) {
		o.Parameters = params
	}
}

// WithSelect limits the returned properties to the named columns
func WithSelect(columns ...string) QueryOption {
	return func(o *QueryOptions) {
		o.Select = columns
	}
}

// WithResultsPerPage sets the maximum number of entities per page
func WithResultsPerPage(n int32) QueryOption {
	return func(o *QueryOptions) {
		o.ResultsPerPage = n
	}
}
