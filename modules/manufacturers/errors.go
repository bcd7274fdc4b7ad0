package manufacturers

import "errors"

// ErrNotFound is returned when no manufacturer matches the given ID.
var ErrNotFound = errors.New("manufacturers: manufacturer not found")
