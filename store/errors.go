// Package store holds the errors and instrumentation shared by the
// identity store adapters.
package store

import "errors"

// Common store errors
var (
	// ErrStoreClosed indicates an operation was attempted after Close
	ErrStoreClosed = errors.New("store is closed")

	// ErrNilRole indicates a nil Role was passed where one is required
	ErrNilRole = errors.New("role must not be nil")

	// ErrNilUser indicates a nil User was passed where one is required
	ErrNilUser = errors.New("user must not be nil")

	// ErrInvalidID indicates an id string is not a valid ObjectID
	ErrInvalidID = errors.New("invalid object id")

	// ErrDuplicateKey indicates a unique constraint violation
	ErrDuplicateKey = errors.New("duplicate key")
)
