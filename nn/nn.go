// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Neuron computes act(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nIn inputs and random weights in [-1, 1).
func NewNeuron(nIn int, act Activation, opts ...Option) (*Neuron, error) {
	return nn.NewNeuron(nIn, act, opts...)
}

// Layer is a set of neurons that receive the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nOut neurons with nIn inputs each.
func NewLayer(nIn, nOut int, act Activation, opts ...Option) (*Layer, error) {
	return nn.NewLayer(nIn, nOut, act, opts...)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// LayerSpec describes one layer of an MLP.
type LayerSpec = nn.LayerSpec

// NewMLP creates a network with nIn inputs and one layer per spec.
//
// Example:
//
//	mlp, err := nn.NewMLP(196, []nn.LayerSpec{
//	    {Neurons: 32, Activation: nn.ReLU},
//	    {Neurons: 10},
//	})
func NewMLP(nIn int, specs []LayerSpec, opts ...Option) (*MLP, error) {
	return nn.NewMLP(nIn, specs, opts...)
}

// NewMLPFromLayers chains existing layers, checking that their sizes match.
func NewMLPFromLayers(layers ...*Layer) (*MLP, error) {
	return nn.NewMLPFromLayers(layers...)
}

// ParseLayerSpecs parses "4:tanh,4:tanh,1" style layer lists.
func ParseLayerSpecs(s string) ([]LayerSpec, error) {
	return nn.ParseLayerSpecs(s)
}

// Activations

// Activation is the nonlinearity applied by a neuron.
type Activation = nn.Activation

// Supported activations.
const (
	Identity = nn.Identity
	Tanh     = nn.Tanh
	ReLU     = nn.ReLU
)

// ParseActivation parses "tanh", "relu" or "" / "none" / "linear".
func ParseActivation(s string) (Activation, error) {
	return nn.ParseActivation(s)
}

// Options

// Option configures parameter initialization.
type Option = nn.Option

// WithRand draws initial parameters from rng.
func WithRand(rng *rand.Rand) Option {
	return nn.WithRand(rng)
}

// Loss functions

// SquaredError returns the sum of (prediction - target)².
func SquaredError(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	return nn.SquaredError(predictions, targets)
}

// MSELoss returns the mean of (prediction - target)².
func MSELoss(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	return nn.MSELoss(predictions, targets)
}

// OneHot returns a vector of n zeros with a 1 at position label.
func OneHot(label, n int) ([]float64, error) {
	return nn.OneHot(label, n)
}

// ArgMax returns the index of the largest value, or -1 if values is empty.
func ArgMax(values []*autodiff.Value) int {
	return nn.ArgMax(values)
}

// Errors

// DimensionError reports an input of the wrong size.
type DimensionError = nn.DimensionError

// Common errors.
var (
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrInvalidConfig     = nn.ErrInvalidConfig
)
