package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// DimensionError reports an input sequence or layer whose size does not
// match what the receiving module expects. It matches ErrDimensionMismatch
// with errors.Is.
type DimensionError struct {
	Op   string // Operation that rejected the input (e.g., "Neuron.Forward")
	Want int    // Expected size
	Got  int    // Actual size
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: expected %d inputs, got %d", e.Op, ErrDimensionMismatch, e.Want, e.Got)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

func checkInputs(op string, want, got int) error {
	if want != got {
		return &DimensionError{Op: op, Want: want, Got: got}
	}
	return nil
}
