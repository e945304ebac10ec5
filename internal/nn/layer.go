package nn

import (
	"fmt"
	"strconv"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a set of neurons that all receive the same inputs.
// It produces one output per neuron, in neuron order.
type Layer struct {
	nIn     int
	neurons []*Neuron
}

// NewLayer creates a layer of nOut neurons, each with nIn inputs and the
// given activation.
//
// Returns ErrInvalidConfig if nIn is negative, nOut is not positive, or the
// activation is unknown.
func NewLayer(nIn, nOut int, act Activation, opts ...Option) (*Layer, error) {
	if nOut <= 0 {
		return nil, fmt.Errorf("%w: layer must have at least one neuron, got %d", ErrInvalidConfig, nOut)
	}
	if nIn < 0 {
		return nil, fmt.Errorf("%w: layer input count must be non-negative, got %d", ErrInvalidConfig, nIn)
	}
	if !act.valid() {
		return nil, fmt.Errorf("%w: unknown activation %d", ErrInvalidConfig, uint8(act))
	}

	o := newOptions(opts)
	neurons := make([]*Neuron, nOut)
	for i := range neurons {
		neurons[i] = newNeuron(nIn, act, o)
	}
	return &Layer{nIn: nIn, neurons: neurons}, nil
}

// Forward applies every neuron to x.
//
// Returns a *DimensionError if len(x) differs from the layer's input count.
func (l *Layer) Forward(x []*autodiff.Value) ([]*autodiff.Value, error) {
	if err := checkInputs("Layer.Forward", l.nIn, len(x)); err != nil {
		return nil, err
	}

	out := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		v, err := n.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("neuron %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Parameters returns the parameters of every neuron, neuron by neuron.
func (l *Layer) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(l.neurons)*(l.nIn+1))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// NamedParameters prefixes each neuron's parameter names with its index,
// e.g. "2.weight.0".
func (l *Layer) NamedParameters() []NamedParameter {
	named := make([]NamedParameter, 0, len(l.neurons)*(l.nIn+1))
	for i, n := range l.neurons {
		named = append(named, prefixed(strconv.Itoa(i), n.NamedParameters())...)
	}
	return named
}

// ZeroGrad resets the gradients of every neuron.
func (l *Layer) ZeroGrad() {
	for _, n := range l.neurons {
		n.ZeroGrad()
	}
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// NumInputs returns the number of inputs each neuron expects.
func (l *Layer) NumInputs() int {
	return l.nIn
}

// NumOutputs returns the number of neurons.
func (l *Layer) NumOutputs() int {
	return len(l.neurons)
}

// Activation returns the activation of the layer's neurons.
func (l *Layer) Activation() Activation {
	return l.neurons[0].activation
}

// String describes the layer.
func (l *Layer) String() string {
	return fmt.Sprintf("Layer(%d neurons of %d inputs, %s)", len(l.neurons), l.nIn, l.Activation())
}
