package service

import "errors"

// Sentinel errors returned by services. Handlers translate these into HTTP
// status codes and envelope messages.
var (
	// ErrNotFound covers both a genuinely missing entity and one filtered
	// out by the caller's ownership scope; the two are deliberately not
	// distinguished so existence is not leaked to non-owners.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is authenticated but the operation is
	// denied by policy.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned on registration with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
)
