// Package optim implements parameter updates for training networks built on
// the scalar autodiff engine.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: plain gradient descent, param -= lr * grad
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    out, _ := model.Forward(x)
//	    loss, _ := nn.SquaredError(out, targets)
//	    loss.Backward()
//
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step updates every parameter in place from its accumulated gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Backward accumulates, so this must be called between steps.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}
