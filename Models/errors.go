package Models

import "errors"

var (
	// ErrValidation covers missing fields and references that do not resolve.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when a mutation targets a nonexistent id.
	ErrNotFound = errors.New("record not found")
	// ErrAuthentication is deliberately generic: it never reveals whether the
	// username or the password was wrong.
	ErrAuthentication = errors.New("username or password is incorrect")
)
