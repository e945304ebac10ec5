package autodiff

// Sum left-folds xs with Add, starting from start.
//
// A nil start is Const(0). An empty xs returns the wrapped start node itself.
//
// Example:
//
//	loss := autodiff.Sum(squaredErrors, nil)
func Sum[T Valuable](xs []T, start Valuable) *Value {
	acc := Wrap(start)
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// WrapAll coerces every operand of xs with Wrap, so a mix of nodes and
// constants can be fed to functions taking []*Value.
//
// Example:
//
//	out, err := mlp.Forward(autodiff.WrapAll([]autodiff.Valuable{x, autodiff.Const(1)}))
func WrapAll[T Valuable](xs []T) []*Value {
	values := make([]*Value, len(xs))
	for i, x := range xs {
		values[i] = Wrap(x)
	}
	return values
}

// Softmax exponentiates every element and divides each by the sum of the
// exponentials. The result has the same length as xs and its values form a
// probability distribution.
//
// No max-subtraction is applied before exponentiating, so inputs above ~709
// overflow to +Inf and produce NaN outputs.
func Softmax[T Valuable](xs []T) []*Value {
	exps := make([]*Value, len(xs))
	for i, x := range xs {
		exps[i] = Wrap(x).Exp()
	}

	total := Sum(exps, nil)
	out := make([]*Value, len(exps))
	for i, e := range exps {
		out[i] = e.Div(total)
	}
	return out
}
