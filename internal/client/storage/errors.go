package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session data not found")

	// ErrLocalProductNotFound indicates that the local products store
	// holds no product with the requested id
	ErrLocalProductNotFound = errors.New("local product not found")
)
