package domain

import "errors"

// Authentication failures.
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("authentication required")

// Token decoding failures. Callers treat a failed decode as "no identity",
// never as a fatal condition.
var ErrTokenMalformed = errors.New("malformed token")

// Domain failures surfaced from the backend. The server is the sole
// enforcement authority; these classify its rejections.
var ErrForbidden = errors.New("access forbidden")
var ErrNotFound = errors.New("resource not found")
var ErrValidation = errors.New("validation failed")
var ErrConflict = errors.New("conflict")
var ErrInvalidTransition = errors.New("invalid status transition")

// Transport failures. Always recoverable by retrying the triggering action.
var ErrNetwork = errors.New("network failure")
var ErrServerFault = errors.New("server fault")
