// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic operation on a Value produces a new Value that records its
// operands and an operator tag. The set of values reachable backward from a
// result forms a computation graph; Backward linearizes that graph and applies
// the chain rule from the result to every value that contributed to it.
//
// Example:
//
//	a := autodiff.New(2)
//	b := autodiff.New(-3)
//	loss := a.Mul(b).Add(autodiff.Const(10))
//	loss.Backward()
//	a.Grad() // -3
//	b.Grad() // 2
//
// Values are not safe for concurrent use. A fresh graph is built on every
// forward pass; only leaf values held by the caller (parameters) outlive it.
package autodiff

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a differentiable scalar together with the record of how it was
// produced.
type Value struct {
	data   float64
	grad   float64
	inputs []*Value // 0, 1 or 2 operands, in operator order
	op     ops.Op
}

// New creates a leaf value.
func New(data float64) *Value {
	return &Value{data: data, op: ops.LeafOp}
}

// NewValues creates one leaf value per element of data.
func NewValues(data []float64) []*Value {
	values := make([]*Value, len(data))
	for i, d := range data {
		values[i] = New(d)
	}
	return values
}

// newResult builds a derived node and computes its value from the operands.
func newResult(op ops.Op, inputs ...*Value) *Value {
	in := make([]float64, len(inputs))
	for i, v := range inputs {
		in[i] = v.data
	}
	return &Value{
		data:   op.Forward(in...),
		inputs: inputs,
		op:     op,
	}
}

// Data returns the current scalar value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the scalar value.
//
// This is meant for leaf values, typically parameters updated between
// training steps. Derived values are not recomputed.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets the accumulated gradient to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Inputs returns the operands this value was computed from.
// Leaf values have none.
func (v *Value) Inputs() []*Value {
	return v.inputs
}

// Op returns the operator that produced this value.
func (v *Value) Op() ops.Op {
	return v.op
}

// IsLeaf reports whether v was not produced by an operation.
func (v *Value) IsLeaf() bool {
	return len(v.inputs) == 0
}

// Add returns v + other.
func (v *Value) Add(other Valuable) *Value {
	return newResult(ops.Op{Kind: ops.Add}, v, Wrap(other))
}

// Mul returns v * other.
func (v *Value) Mul(other Valuable) *Value {
	return newResult(ops.Op{Kind: ops.Mul}, v, Wrap(other))
}

// Pow returns v raised to a constant real exponent.
//
// A fractional exponent on a negative value yields NaN.
func (v *Value) Pow(exponent float64) *Value {
	return newResult(ops.PowOp(exponent), v)
}

// Exp returns e^v.
func (v *Value) Exp() *Value {
	return newResult(ops.Op{Kind: ops.Exp}, v)
}

// Tanh returns the hyperbolic tangent of v.
func (v *Value) Tanh() *Value {
	return newResult(ops.Op{Kind: ops.Tanh}, v)
}

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value {
	return newResult(ops.Op{Kind: ops.ReLU}, v)
}

// Neg returns -v, computed as v * -1.
func (v *Value) Neg() *Value {
	return v.Mul(Const(-1))
}

// Sub returns v - other, computed as v + (other * -1).
func (v *Value) Sub(other Valuable) *Value {
	return v.Add(Wrap(other).Neg())
}

// Div returns v / other, computed as v * other^-1.
//
// Dividing by a zero-valued node yields an infinite value and gradient.
func (v *Value) Div(other Valuable) *Value {
	return v.Mul(Wrap(other).Pow(-1))
}

// String describes the value and, for derived values, its operator and
// operand values, e.g. "Value(-8 = 4 * -2)".
func (v *Value) String() string {
	switch len(v.inputs) {
	case 0:
		return fmt.Sprintf("Value(%g)", v.data)
	case 1:
		return fmt.Sprintf("Value(%g = %s(%g))", v.data, v.op, v.inputs[0].data)
	default:
		operands := make([]string, len(v.inputs))
		for i, in := range v.inputs {
			operands[i] = fmt.Sprintf("%g", in.data)
		}
		return fmt.Sprintf("Value(%g = %s)", v.data, strings.Join(operands, " "+v.op.String()+" "))
	}
}
