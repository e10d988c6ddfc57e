// Package common contains shared constants and sentinel errors used across
// GemVault components. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// Catalog-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrorTransport = errors.New("transport error")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Local session errors.
	ErrNoSession          = errors.New("no stored session")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
