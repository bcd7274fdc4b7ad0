package response

import "net/http"

// HTTPError represents an HTTP error with a status code and a stable,
// machine-readable key.
type HTTPError struct {
	Code    int    // HTTP status code
	Key     string // stable error code for clients
	Message string // human-readable message
}

// Error implements the error interface.
func (e HTTPError) Error() string { return e.Key }

// NewHTTPError creates a custom HTTP error.
func NewHTTPError(code int, key, message string) HTTPError {
	return HTTPError{Code: code, Key: key, Message: message}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request", Message: "Bad request."}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized", Message: "Access denied."}
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Key: "forbidden", Message: "Access denied."}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found", Message: "Resource not found."}
	ErrConflict            = HTTPError{Code: http.StatusConflict, Key: "conflict", Message: "Resource already exists."}
	ErrUnprocessableEntity = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity", Message: "Request could not be processed."}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_error", Message: "Internal server error."}
)
