package serialization

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/micrograd/internal/nn"
)

// ValidateParameterName checks that a parameter name is usable as a
// state dict key.
func ValidateParameterName(name string) error {
	if name == "" {
		return &ValidationError{Type: "invalid_name", Details: "empty parameter name"}
	}
	if len(name) > MaxParameterName {
		return &ValidationError{
			Type:      "invalid_name",
			Parameter: name[:32] + "...",
			Details:   fmt.Sprintf("length %d exceeds %d", len(name), MaxParameterName),
		}
	}
	if strings.ContainsAny(name, "\x00\n\r") {
		return &ValidationError{Type: "invalid_name", Parameter: name, Details: "contains control characters"}
	}
	return nil
}

// ValidateHeader checks the header against the size of the data section.
//
// The parameter count implied by InputSize and Layers must match the listed
// parameters, so a header can never describe a network larger than its data.
//
// Every parameter must have a valid, unique name and an aligned offset that
// lies within the data section, and no two parameters may share an offset.
func ValidateHeader(h *Header, dataSize int64) error {
	if h.FormatVersion != FormatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.FormatVersion)
	}
	if h.ModelType != ModelTypeMLP {
		return fmt.Errorf("%w: %q", ErrUnsupportedModel, h.ModelType)
	}
	count, err := ParameterCount(h.InputSize, h.Layers)
	if err != nil {
		return err
	}
	if count != int64(len(h.Parameters)) {
		return fmt.Errorf("%w: architecture has %d, header lists %d",
			ErrParameterCount, count, len(h.Parameters))
	}
	if int64(len(h.Parameters))*ParameterSize != dataSize {
		return fmt.Errorf("%w: header lists %d parameters, data holds %d",
			ErrParameterCount, len(h.Parameters), dataSize/ParameterSize)
	}

	names := make(map[string]struct{}, len(h.Parameters))
	offsets := make(map[int64]string, len(h.Parameters))
	for _, p := range h.Parameters {
		if err := ValidateParameterName(p.Name); err != nil {
			return err
		}
		if _, dup := names[p.Name]; dup {
			return &ValidationError{Type: "duplicate_name", Parameter: p.Name, Details: "listed more than once"}
		}
		names[p.Name] = struct{}{}

		if p.Offset < 0 || p.Offset%ParameterSize != 0 || p.Offset+ParameterSize > dataSize {
			return &ValidationError{
				Type:      "out_of_bounds",
				Parameter: p.Name,
				Details:   fmt.Sprintf("offset %d invalid for data size %d", p.Offset, dataSize),
			}
		}
		if other, dup := offsets[p.Offset]; dup {
			return &ValidationError{
				Type:      "offset_overlap",
				Parameter: p.Name,
				Details:   fmt.Sprintf("shares offset %d with %q", p.Offset, other),
			}
		}
		offsets[p.Offset] = p.Name
	}

	return nil
}

// ParameterCount returns the number of weights and biases of an MLP with
// inputSize inputs and the given layers: the sum of (in+1)*neurons.
//
// Returns a *ValidationError for a negative input size, an empty layer list,
// a non-positive neuron count, or a count that overflows int64.
func ParameterCount(inputSize int, layers []nn.LayerSpec) (int64, error) {
	invalid := func(details string) error {
		return &ValidationError{Type: "invalid_architecture", Details: details}
	}

	if inputSize < 0 {
		return 0, invalid(fmt.Sprintf("negative input size %d", inputSize))
	}
	if len(layers) == 0 {
		return 0, invalid("no layers")
	}

	var total int64
	in := int64(inputSize)
	for i, l := range layers {
		n := int64(l.Neurons)
		if n <= 0 {
			return 0, invalid(fmt.Sprintf("layer %d has %d neurons", i, l.Neurons))
		}
		if in == math.MaxInt64 || in+1 > math.MaxInt64/n {
			return 0, invalid(fmt.Sprintf("layer %d parameter count overflows", i))
		}
		per := (in + 1) * n
		if total > math.MaxInt64-per {
			return 0, invalid("parameter count overflows")
		}
		total += per
		in = n
	}
	return total, nil
}
