package store

import "errors"

var (
	// ErrNotFound is returned when updating an item that is not in the store.
	ErrNotFound = errors.New("arbor: item not found")

	// ErrAlreadyExists is returned when adding an item whose id is already taken.
	ErrAlreadyExists = errors.New("arbor: item already exists")

	// ErrParentNotFound is returned when a parent reference does not resolve
	// to a stored item.
	ErrParentNotFound = errors.New("arbor: parent not found")

	// ErrCircularRef is returned when a mutation would make an item its own
	// ancestor.
	ErrCircularRef = errors.New("arbor: circular reference")
)
