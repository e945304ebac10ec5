// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic operation on a Value records its operands, so the result
// carries the computation graph that produced it. Backward walks that graph
// once, from the result back to the leaves, and leaves the exact partial
// derivative in every contributing value's Grad.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.New(2)
//	    b := autodiff.New(-3)
//	    c := autodiff.New(10)
//	    f := autodiff.New(-2)
//
//	    loss := c.Add(a.Mul(b)).Mul(f) // (c + a*b) * f = -8
//	    loss.Backward()
//
//	    a.Grad() // 6
//	    b.Grad() // -4
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a differentiable scalar node.
type Value = autodiff.Value

// Valuable is an operand: a *Value or a Const.
type Valuable = autodiff.Valuable

// Const is a numeric operand wrapped into a fresh leaf when used.
type Const = autodiff.Const

// Op is the operator tag recorded on derived values.
type Op = ops.Op

// Tape is a value's computation graph in topological order.
type Tape = autodiff.Tape

// New creates a leaf value.
func New(data float64) *Value {
	return autodiff.New(data)
}

// NewValues creates one leaf value per element of data.
func NewValues(data []float64) []*Value {
	return autodiff.NewValues(data)
}

// Wrap coerces an operand into a node.
func Wrap(x Valuable) *Value {
	return autodiff.Wrap(x)
}

// Sum left-folds xs with Add, starting from start (nil means 0).
//
// Example:
//
//	loss := autodiff.Sum(squaredErrors, nil)
func Sum[T Valuable](xs []T, start Valuable) *Value {
	return autodiff.Sum(xs, start)
}

// WrapAll coerces every operand of xs into a node.
func WrapAll[T Valuable](xs []T) []*Value {
	return autodiff.WrapAll(xs)
}

// Softmax returns exp(x_i) / sum_j exp(x_j) for every element of xs.
//
// No max-subtraction is applied, so large inputs overflow.
func Softmax[T Valuable](xs []T) []*Value {
	return autodiff.Softmax(xs)
}

// Record linearizes the graph behind root.
func Record(root *Value) *Tape {
	return autodiff.Record(root)
}

// TopologicalOrder returns the nodes reachable from root, inputs first.
func TopologicalOrder(root *Value) []*Value {
	return autodiff.TopologicalOrder(root)
}
