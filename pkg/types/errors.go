package types

import "errors"

// Item validation errors.
var (
	ErrNegativeCopies = errors.New("copies cannot be negative")
)
