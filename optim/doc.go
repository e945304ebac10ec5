// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter updates for training networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient descent, param -= lr * grad
//   - Optimizer interface for custom update rules
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
//	    mlp, _ := nn.NewMLP(3, []nn.LayerSpec{{Neurons: 4, Activation: nn.Tanh}, {Neurons: 1}})
//	    optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	    for epoch := range 100 {
//	        out, _ := mlp.Forward(autodiff.NewValues(x))
//	        loss, _ := nn.SquaredError(out, y)
//	        loss.Backward()
//
//	        optimizer.Step()
//	        optimizer.ZeroGrad()
//	    }
//	}
//
// # Learning Rate Decay
//
// SetLR changes the rate between steps:
//
//	optimizer.SetLR(optimizer.GetLR() * 0.995)
package optim
