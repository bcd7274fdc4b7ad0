package parts

import "errors"

// ErrNotFound is returned when no part matches the given ID.
var ErrNotFound = errors.New("parts: part not found")
