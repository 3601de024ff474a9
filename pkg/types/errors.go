package types

import "errors"

// Entity errors.
var (
	// ErrDuplicateName is returned by the store when a flavor name is
	// already taken. Catalog.AddFlavor recovers it into a status message.
	ErrDuplicateName = errors.New("duplicate name")

	ErrInvalidName = errors.New("invalid name")
	ErrInvalidData = errors.New("invalid entity data")
)
