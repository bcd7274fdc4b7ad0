package users

import "errors"

var (
	// ErrNotFound is returned when no user matches the given ID or email.
	ErrNotFound = errors.New("users: user not found")

	// ErrEmailAlreadyExists is returned when creating or updating a user
	// would duplicate an existing email address.
	ErrEmailAlreadyExists = errors.New("users: email already exists")
)
