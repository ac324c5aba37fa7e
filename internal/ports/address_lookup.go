package ports

import "context"

// Resolved street address for a postcode lookup.
type AddressResult struct {
	Street string
	City   string
}

// Contract for resolving a Dutch postcode and house number to street and city.
type AddressLookup interface {
	Lookup(ctx context.Context, postcode, houseNumber string) (AddressResult, error)
}
