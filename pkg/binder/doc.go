// Package binder decodes JSON request bodies into typed request structs.
//
// Decoding is strict: the content type must be application/json, unknown
// fields are rejected, and trailing data after the JSON document is an error.
// Strictness keeps malformed requests on the 4xx path instead of silently
// producing zero-valued fields.
//
// # Usage
//
//	var req LoginRequest
//	if err := binder.JSON(r, &req); err != nil {
//	    // respond 400 with the binding error
//	}
package binder
