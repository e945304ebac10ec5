package autodiff

// Valuable is an operand accepted by Value operations: either an existing
// *Value or a Const.
//
// The interface is sealed; Wrap is the only way to turn one into a node.
type Valuable interface {
	node() *Value
}

// Const is a plain numeric operand. It becomes a fresh leaf value when used
// in an operation.
type Const float64

func (c Const) node() *Value {
	return New(float64(c))
}

func (v *Value) node() *Value {
	if v == nil {
		return New(0)
	}
	return v
}

// Wrap coerces an operand into a node.
//
// A *Value is returned as is; a Const is wrapped into a new leaf value. A nil
// operand, untyped or a nil *Value, is treated as Const(0).
func Wrap(x Valuable) *Value {
	if x == nil {
		return New(0)
	}
	return x.node()
}
