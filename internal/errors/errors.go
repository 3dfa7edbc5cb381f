package errors

import "errors"

// This package defines the application's sentinel errors. Services return
// these without knowing about HTTP; the API layer checks them with
// errors.Is() and maps them to status codes.

var (
	// ErrNotFound signifies that a requested resource (typically a chat
	// session) could not be located. Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation, e.g. a
	// blank message with no image, or an undecodable image payload.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrMissingAPIKey signifies that no Gemini credential is configured.
	// It is raised before any network call is attempted. The conversation
	// service converts it into an in-chat error message rather than
	// letting it reach the client as a failure.
	ErrMissingAPIKey = errors.New("gemini api key not configured")

	// ErrInternal signifies an unexpected server-side error. Mapped to
	// 500 Internal Server Error without leaking details.
	ErrInternal = errors.New("internal server error")
)
