package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch    = errors.New("checksum mismatch: file may be corrupted")
	ErrHeaderTooLarge      = errors.New("header exceeds maximum size")
	ErrInvalidMagic        = errors.New("invalid magic bytes")
	ErrUnsupportedVersion  = errors.New("unsupported format version")
	ErrUnsupportedModel    = errors.New("unsupported model type")
	ErrParameterCount      = errors.New("parameter count does not match architecture")
	ErrInvalidParameterRef = errors.New("invalid parameter reference")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type      string // Type of error (e.g., "out_of_bounds", "duplicate_name")
	Parameter string // Parameter name involved, if any
	Details   string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("%s: parameter %q: %s", e.Type, e.Parameter, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap returns ErrInvalidParameterRef.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameterRef
}
