package optim

import "github.com/born-ml/micrograd/internal/autodiff"

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Example:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{LR: 0.07})
//
//	for epoch := range epochs {
//	    loss := trainStep(mlp, batch)
//	    loss.Backward()
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
type SGD struct {
	params []*autodiff.Value
	lr     float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer over params.
//
// The parameter slice is kept as is; its values are updated in place.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params: params,
		lr:     config.LR,
	}
}

// Step applies param -= lr * grad to every parameter.
//
// Parameters that did not take part in the backward pass have a zero
// gradient and are left unchanged.
func (s *SGD) Step() {
	for _, p := range s.params {
		p.SetData(p.Data() - s.lr*p.Grad())
	}
}

// ZeroGrad clears the gradient of every parameter.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR sets the learning rate, e.g. for decay between epochs.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
