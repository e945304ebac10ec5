package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Activation is the nonlinearity a neuron applies to its weighted sum.
type Activation uint8

// Supported activations.
const (
	// Identity leaves the weighted sum unchanged.
	Identity Activation = iota
	// Tanh squashes values to the range (-1, 1).
	Tanh
	// ReLU applies max(0, x).
	ReLU
)

// String returns the activation's name.
func (a Activation) String() string {
	switch a {
	case Identity:
		return "identity"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}

// ParseActivation parses an activation name. The empty string, "none" and
// "linear" mean Identity.
func ParseActivation(s string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "linear", "identity":
		return Identity, nil
	case "tanh":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	default:
		return Identity, fmt.Errorf("%w: unknown activation %q", ErrInvalidConfig, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Activation) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: unknown activation %d", ErrInvalidConfig, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Activation) UnmarshalText(text []byte) error {
	parsed, err := ParseActivation(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Apply passes v through the activation. Identity returns v itself.
func (a Activation) Apply(v *autodiff.Value) *autodiff.Value {
	switch a {
	case Tanh:
		return v.Tanh()
	case ReLU:
		return v.ReLU()
	default:
		return v
	}
}

func (a Activation) valid() bool {
	return a <= ReLU
}
