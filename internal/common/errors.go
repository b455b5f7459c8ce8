// Package common defines shared constants and sentinel errors used across
// client and server layers of Brain Dash. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorConflict     = errors.New("already exists")
	ErrorBadRequest   = errors.New("bad request")

	// Upstream categorization service returned unusable output.
	ErrorBadGateway = errors.New("bad gateway")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
