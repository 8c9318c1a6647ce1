// Package common defines shared constants and sentinel errors used across
// the admin console. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Transport-level errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Business-rule errors.
	ErrNotAdmin = errors.New("only admin users are allowed to access this system")

	// ErrSuperseded is returned when the result of an operation was discarded
	// because a newer attempt of the same operation was started before it
	// finished.
	ErrSuperseded = errors.New("superseded by a newer attempt")
)
