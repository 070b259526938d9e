package service

import "errors"

// Cross-cutting errors shared by the roster and attendance services. The
// HTTP layer maps these to response codes; the services themselves only
// speak in terms of what went wrong.
var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid_input")

	// ErrPersonNotFound also covers persons that exist but are outside
	// the caller's city: the roster is city-scoped, so foreign persons
	// are indistinguishable from absent ones.
	ErrPersonNotFound = errors.New("person_not_found")
)
