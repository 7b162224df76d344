// Package common defines shared constants and sentinel errors used across
// the siteadmin layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository / list editor errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("user already exists")
	ErrLastAdmin      = errors.New("cannot remove the last admin account")

	// Record shape errors.
	ErrValidation = errors.New("validation error")

	// Backup import errors.
	ErrParse = errors.New("invalid backup document")

	// Session guard errors.
	ErrAuthFailure  = errors.New("invalid credentials")
	ErrUnauthorized = errors.New("unauthorized")
)
