package store

import "errors"

var (
	// ErrNotFound means the query or update matched zero documents.
	ErrNotFound = errors.New("not found")
	// ErrUnchanged means the update matched a document but modified nothing,
	// e.g. a booking already in the requested status.
	ErrUnchanged = errors.New("no change")
)
