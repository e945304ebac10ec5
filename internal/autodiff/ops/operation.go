// Package ops defines the operator tags of the scalar computation graph and
// their local-derivative rules.
//
// Every derived node records an Op. During the backward pass the engine calls
// Op.Backward with the node's input values, its own value and its accumulated
// gradient, and adds the returned contributions into the inputs' gradients.
//
// Supported operations:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Pow: a^k for a constant real k (d/da = k * a^(k-1))
//   - Exp: e^a (d/da = e^a)
//   - Tanh: tanh(a) (d/da = 1 - tanh²(a))
//   - ReLU: max(0, a) (d/da = 1 if a > 0, else 0)
package ops

import (
	"fmt"
	"math"
)

// Kind identifies which local-derivative rule applies to a node.
type Kind uint8

// Operator kinds.
const (
	Leaf Kind = iota // No operator: constants, inputs and parameters.
	Add
	Mul
	Pow
	Exp
	Tanh
	ReLU
)

// String returns the symbol used in diagnostic output.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Add:
		return "+"
	case Mul:
		return "*"
	case Pow:
		return "^"
	case Exp:
		return "exp"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Arity returns the number of inputs an operator of this kind consumes.
func (k Kind) Arity() int {
	switch k {
	case Add, Mul:
		return 2
	case Pow, Exp, Tanh, ReLU:
		return 1
	default:
		return 0
	}
}

// Op is an operator tag. Exponent is only meaningful for Pow.
type Op struct {
	Kind     Kind
	Exponent float64
}

// LeafOp is the operator of nodes that were not produced by an operation.
var LeafOp = Op{Kind: Leaf}

// PowOp returns the power operator with the given constant exponent.
func PowOp(exponent float64) Op {
	return Op{Kind: Pow, Exponent: exponent}
}

// String returns a short human-readable form, e.g. "^-1" or "tanh".
func (op Op) String() string {
	if op.Kind == Pow {
		return fmt.Sprintf("^%g", op.Exponent)
	}
	return op.Kind.String()
}

// Forward computes the operator's output from its input values.
//
// Panics if the number of inputs does not match the operator's arity, or if
// called on a Leaf operator.
func (op Op) Forward(inputs ...float64) float64 {
	op.checkArity(len(inputs), "Forward")

	switch op.Kind {
	case Add:
		return inputs[0] + inputs[1]
	case Mul:
		return inputs[0] * inputs[1]
	case Pow:
		return math.Pow(inputs[0], op.Exponent)
	case Exp:
		return math.Exp(inputs[0])
	case Tanh:
		return math.Tanh(inputs[0])
	case ReLU:
		return math.Max(0, inputs[0])
	default:
		panic(fmt.Sprintf("Op.Forward: operator %s has no forward rule", op.Kind))
	}
}

// Backward applies the chain rule for a single node.
//
// Given the node's input values, its output value and the gradient
// accumulated on the output, it returns the contribution to add to each
// input's gradient: d(out)/d(in_i) * outputGrad. A Leaf operator returns nil.
//
// Example for Mul:
//
//	inputs:     [a, b]
//	outputGrad: dL/d(a*b)
//	returns:    [b * dL/d(a*b), a * dL/d(a*b)]
func (op Op) Backward(inputs []float64, output, outputGrad float64) []float64 {
	if op.Kind == Leaf {
		return nil
	}
	op.checkArity(len(inputs), "Backward")

	switch op.Kind {
	case Add:
		return []float64{outputGrad, outputGrad}
	case Mul:
		return []float64{inputs[1] * outputGrad, inputs[0] * outputGrad}
	case Pow:
		return []float64{op.Exponent * math.Pow(inputs[0], op.Exponent-1) * outputGrad}
	case Exp:
		// The output already holds e^a.
		return []float64{output * outputGrad}
	case Tanh:
		t := math.Tanh(inputs[0])
		return []float64{(1 - t*t) * outputGrad}
	case ReLU:
		if inputs[0] > 0 {
			return []float64{outputGrad}
		}
		return []float64{0}
	default:
		panic(fmt.Sprintf("Op.Backward: unknown operator %s", op.Kind))
	}
}

func (op Op) checkArity(n int, method string) {
	if want := op.Kind.Arity(); n != want || want == 0 {
		panic(fmt.Sprintf("Op.%s: operator %s expects %d inputs, got %d", method, op.Kind, want, n))
	}
}
