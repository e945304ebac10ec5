// Package nn implements a feed-forward neural network on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Neuron: weighted sum of inputs plus bias, optionally passed through an activation
//   - Layer: neurons sharing the same inputs
//   - MLP: layers chained so that each layer's outputs feed the next one
//   - Activation: Identity, Tanh, ReLU
//   - Losses and helpers: SquaredError, MSELoss, OneHot, ArgMax
//   - State dicts for saving and restoring parameter values
//
// Parameters (weights and biases) are autodiff leaf values created once and
// reused on every forward pass. Each forward pass builds a fresh graph on top
// of them; gradients accumulate on the parameters until ZeroGrad is called.
package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Module is the interface shared by Neuron, Layer and MLP.
//
// Forward is not part of the interface because a Neuron produces a single
// value while layers and networks produce one value per neuron.
type Module interface {
	// Parameters returns every weight and bias owned by the module,
	// flattened in a stable order.
	Parameters() []*autodiff.Value

	// NamedParameters returns the same values as Parameters, in the same
	// order, each with a name unique within the module.
	NamedParameters() []NamedParameter

	// ZeroGrad resets the gradient of every parameter to 0.
	//
	// Backward accumulates gradients, so this must be called between
	// training steps.
	ZeroGrad()

	// String describes the module's structure.
	String() string
}

// zeroGrad resets the gradient of every value in params.
func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
