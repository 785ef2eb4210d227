package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a delete or lookup targeting an id that does not
	// exist in its collection. Absence of the settings singleton is NOT
	// reported through this error (it is created lazily instead).
	ErrNotFound = errors.New("not found")

	// ErrMalformedTimestamp reports a stored temporal value that does not
	// parse as RFC 3339 text. It is a data-integrity error and is never
	// silently defaulted.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrStoreUnavailable reports that the document store could not be
	// reached. Distinct from ErrNotFound so callers can retry with backoff.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports a create input missing a required field or
// carrying a value of the wrong shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func missingField(field string) error {
	return &ValidationError{Field: field, Reason: "required field is missing or empty"}
}
