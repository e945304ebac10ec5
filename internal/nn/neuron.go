package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes act(w·x + b) for a fixed number of inputs.
//
// Weights and bias are initialized uniformly in [-1, 1).
//
// Example:
//
//	n, _ := nn.NewNeuron(2, nn.Tanh)
//	out, err := n.Forward(autodiff.NewValues([]float64{0.5, -1}))
type Neuron struct {
	weights    []*autodiff.Value // one per input
	bias       *autodiff.Value
	activation Activation
}

// NewNeuron creates a neuron with nIn inputs.
//
// Returns ErrInvalidConfig if nIn is negative or the activation is unknown.
func NewNeuron(nIn int, act Activation, opts ...Option) (*Neuron, error) {
	if nIn < 0 {
		return nil, fmt.Errorf("%w: neuron input count must be non-negative, got %d", ErrInvalidConfig, nIn)
	}
	if !act.valid() {
		return nil, fmt.Errorf("%w: unknown activation %d", ErrInvalidConfig, uint8(act))
	}
	return newNeuron(nIn, act, newOptions(opts)), nil
}

func newNeuron(nIn int, act Activation, o *options) *Neuron {
	weights := make([]*autodiff.Value, nIn)
	for i := range weights {
		weights[i] = autodiff.New(o.uniform(-1, 1))
	}
	return &Neuron{
		weights:    weights,
		bias:       autodiff.New(o.uniform(-1, 1)),
		activation: act,
	}
}

// Forward computes the neuron's output for inputs x.
//
// The weighted sum is folded starting from the bias, then passed through the
// activation. Returns a *DimensionError if len(x) differs from the number of
// weights. Use autodiff.NewValues or autodiff.WrapAll to build x from plain
// numbers or constants.
func (n *Neuron) Forward(x []*autodiff.Value) (*autodiff.Value, error) {
	if err := checkInputs("Neuron.Forward", len(n.weights), len(x)); err != nil {
		return nil, err
	}

	products := make([]*autodiff.Value, len(n.weights))
	for i, w := range n.weights {
		products[i] = w.Mul(x[i])
	}
	return n.activation.Apply(autodiff.Sum(products, n.bias)), nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// NamedParameters returns "weight.<i>" for each weight followed by "bias".
func (n *Neuron) NamedParameters() []NamedParameter {
	named := make([]NamedParameter, 0, len(n.weights)+1)
	for i, w := range n.weights {
		named = append(named, NamedParameter{Name: fmt.Sprintf("weight.%d", i), Value: w})
	}
	return append(named, NamedParameter{Name: "bias", Value: n.bias})
}

// ZeroGrad resets the gradients of the weights and bias.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}

// Weights returns the weight values, one per input.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.weights
}

// Bias returns the bias value.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// NumInputs returns the number of inputs the neuron expects.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// Activation returns the neuron's activation.
func (n *Neuron) Activation() Activation {
	return n.activation
}

// String describes the neuron.
func (n *Neuron) String() string {
	return fmt.Sprintf("Neuron(%d inputs, %s, bias=%g)", len(n.weights), n.activation, n.bias.Data())
}
