package testmodels

import "github.com/go-openapi/strfmt"

type Customer struct {

	// Timestamp when the customer record was created.
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`

	// Contact email address.
	// Required: true
	Email *string `json:"Email"`

	// Unique identifier for the customer.
	// Required: true
	ID *string `json:"Id"`

	// Display name.
	// Required: true
	Name *string `json:"Name"`

	// Number of completed orders.
	Orders int64 `json:"Orders,omitempty"`

	// Loyalty tier the customer belongs to.
	Tier string `json:"Tier,omitempty"`
}
