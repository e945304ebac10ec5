// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/serialization"
)

// Module is the interface shared by Neuron, Layer and MLP.
//
// Every module implements:
//   - Parameters: all weights and biases, flattened in a stable order
//   - NamedParameters: the same values paired with unique names
//   - ZeroGrad: reset every parameter's gradient to 0
//   - String: a structural summary
type Module = nn.Module

// NamedParameter pairs a parameter value with its name inside a module.
type NamedParameter = nn.NamedParameter

// StateDict returns a snapshot of every parameter value of m, keyed by name.
func StateDict(m Module) map[string]float64 {
	return nn.StateDict(m)
}

// LoadStateDict copies parameter values from stateDict into m.
func LoadStateDict(m Module, stateDict map[string]float64) error {
	return nn.LoadStateDict(m, stateDict)
}

// Header describes a saved network.
type Header = serialization.Header

// Save writes mlp to path in .born format.
//
// Example:
//
//	err := nn.Save("xor.born", mlp, map[string]string{"epochs": "500"})
func Save(path string, mlp *MLP, metadata map[string]string) error {
	return serialization.SaveFile(path, mlp, metadata)
}

// Load reads a network saved with Save.
func Load(path string) (*MLP, Header, error) {
	return serialization.LoadFile(path)
}
