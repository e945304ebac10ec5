// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small feed-forward neural network built on scalar
// autodiff values.
//
// # Overview
//
// This package contains:
//   - Neuron: act(w·x + b) over a fixed number of inputs
//   - Layer: neurons sharing the same inputs
//   - MLP: layers chained output to input
//   - Activations: Identity, Tanh, ReLU
//   - Losses: SquaredError, MSELoss
//   - Utilities: OneHot, ArgMax, state dicts, Save and Load
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	    "github.com/born-ml/micrograd/optim"
//	)
//
//	func main() {
//	    mlp, err := nn.NewMLP(3, []nn.LayerSpec{
//	        {Neurons: 4, Activation: nn.Tanh},
//	        {Neurons: 4, Activation: nn.Tanh},
//	        {Neurons: 1, Activation: nn.Tanh},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{LR: 0.07})
//	    for range 100 {
//	        out, _ := mlp.Forward(autodiff.NewValues([]float64{2, 3, -1}))
//	        loss, _ := nn.SquaredError(out, []float64{1})
//	        loss.Backward()
//	        optimizer.Step()
//	        optimizer.ZeroGrad()
//	    }
//	}
//
// # Training Lifecycle
//
// Parameters are created once and reused. Every Forward call builds a fresh
// graph on top of them. Backward adds to the parameters' gradients, so
// ZeroGrad must run between steps.
//
// # Errors
//
// Forward rejects inputs of the wrong length with a *DimensionError that
// matches ErrDimensionMismatch. Constructors reject non-positive layer sizes
// with ErrInvalidConfig. Numeric problems such as division by zero are not
// errors; they show up as Inf or NaN values.
package nn
