/*
Package errors provides semantic error types for the tablestore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrInvalidArgument = errors.New("invalid argument")
	    ErrNotConnected    = errors.New("client not connected")
	    ErrNotFound        = errors.New("resource not found")
	    ErrAlreadyExists   = errors.New("resource already exists")
	    ErrBatchFailed     = errors.New("batch transaction failed")
	    ErrService         = errors.New("service request failed")
	    ErrTransport       = errors.New("transport failure")
	    ErrNoKeyMap        = errors.New("no key map registered for type")
	)

Usage:

	// Check error type
	err := client.DeleteEntity(ctx, "Customers", "EU", "c-100")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // The entity was already gone
	        return nil
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewInvalidArgumentError("tableName", "must start with a letter")
	err := errors.NewNotFoundError("entity", "EU/c-100")
	err := errors.NewBatchError("Customers", 2, "EU", 100, cause)

BatchError, ServiceError and TransportError wrap an underlying cause and
implement Unwrap, so errors.Is and errors.As see through them. A BatchError
produced by a network outage therefore matches both ErrBatchFailed and
ErrTransport.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
