package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike, so login failures cannot be used to enumerate users.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")

	// ErrInvalidToken is returned for bad signatures, malformed tokens, and
	// revoked tokens alike; callers cannot distinguish forged from expired.
	ErrInvalidToken = errors.New("auth: invalid access token")

	// ErrUserNotFound is returned when a lifecycle operation addresses a
	// user identity absent from storage.
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrStorage is returned when a ledger write fails; the operation as a
	// whole fails rather than leaving ledger and index diverged.
	ErrStorage = errors.New("auth: storage operation failed")
)
