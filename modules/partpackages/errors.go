package partpackages

import "errors"

var (
	// ErrNotFound is returned when no package matches the given ID.
	ErrNotFound = errors.New("partpackages: package not found")
	// ErrDuplicateName is returned when a package with the same name exists.
	ErrDuplicateName = errors.New("partpackages: package name already taken")
)
