package repo

import "errors"

var (
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateID is returned when a product with the same id already exists.
	ErrDuplicateID = errors.New("product id already exists")
	// ErrNegativeStock is returned when a stock change would leave stock below zero.
	ErrNegativeStock = errors.New("stock cannot be negative")
	// ErrInvalidProduct wraps boundary validation failures on products.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrInvalidSale wraps boundary validation failures on sales.
	ErrInvalidSale = errors.New("invalid sale")
	// ErrMalformedStorage marks a backing file that exists but could not be
	// read or decoded. Loads that hit it still return an empty collection.
	ErrMalformedStorage = errors.New("malformed storage")
)
