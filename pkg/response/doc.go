// Package response renders JSON responses and maps application errors to
// HTTP statuses.
//
// Success responses carry the payload directly; error responses use a single
// envelope so clients can rely on one shape:
//
//	{"error": {"code": "invalid_token", "message": "Invalid access token."}}
//
// Validation failures additionally carry field-level detail under
// error.details. Unrecognized errors become 500 internal_error without
// leaking internals.
package response
