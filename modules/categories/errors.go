package categories

import "errors"

// ErrNotFound is returned when no category matches the given ID.
var ErrNotFound = errors.New("categories: category not found")
