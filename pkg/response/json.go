package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/partstock/pkg/validator"
)

// ErrorDetail is the body of the error envelope.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error ErrorDetail `json:"error"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error maps err to an HTTP status and writes the error envelope.
// HTTPError values keep their status and key; validation errors become 422
// with field detail; anything else is a 500 with no internals exposed.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: ErrInternalServerError.Message,
	}

	var httpErr HTTPError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		status = http.StatusUnprocessableEntity
		detail.Code = "validation_error"
		detail.Message = "Request validation failed."
		detail.Details = make(map[string][]string, len(validationErrs.Fields()))
		for _, field := range validationErrs.Fields() {
			detail.Details[field] = validationErrs.Get(field)
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		detail.Code = httpErr.Key
		detail.Message = httpErr.Message
	}

	JSON(w, status, errorEnvelope{Error: detail})
}
