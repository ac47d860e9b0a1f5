// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Startup errors. These are the only fatal errors in the application; every
// per-file failure is converted to the fallback category instead.
var (
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)
