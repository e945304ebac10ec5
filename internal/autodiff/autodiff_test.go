package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

// TestValue_InitialGradient tests that new values start with a zero gradient.
func TestValue_InitialGradient(t *testing.T) {
	v := autodiff.New(1)
	assert.Equal(t, 0.0, v.Grad())
	assert.True(t, v.IsLeaf())
	assert.Equal(t, ops.Leaf, v.Op().Kind)

	derived := v.Mul(autodiff.Const(3)).Tanh()
	assert.Equal(t, 0.0, derived.Grad())
}

// buildExpression builds L = (c + a*b) * f.
func buildExpression() (a, b, c, e, d, f, l *autodiff.Value) {
	a = autodiff.New(2)
	b = autodiff.New(-3)
	c = autodiff.New(10)
	e = a.Mul(b)
	d = c.Add(e)
	f = autodiff.New(-2)
	l = d.Mul(f)
	return a, b, c, e, d, f, l
}

// TestValue_ForwardPath tests values computed while the graph is built.
func TestValue_ForwardPath(t *testing.T) {
	_, _, _, e, d, _, l := buildExpression()

	assert.Equal(t, -6.0, e.Data())
	assert.Equal(t, 4.0, d.Data())
	assert.Equal(t, -8.0, l.Data())
}

// TestValue_Backward tests the chain rule through add and multiply.
func TestValue_Backward(t *testing.T) {
	a, b, c, e, d, f, l := buildExpression()
	l.Backward()

	assert.Equal(t, 1.0, l.Grad())
	assert.Equal(t, -2.0, d.Grad())
	assert.Equal(t, 4.0, f.Grad())
	assert.Equal(t, -2.0, e.Grad())
	assert.Equal(t, -2.0, c.Grad())
	assert.Equal(t, 6.0, a.Grad())
	assert.Equal(t, -4.0, b.Grad())

	// Values are untouched by the backward pass.
	assert.Equal(t, -8.0, l.Data())
	assert.Equal(t, 2.0, a.Data())
}

// TestValue_BackwardThroughTanh tests o = tanh(x1*w1 + x2*w2 + b).
func TestValue_BackwardThroughTanh(t *testing.T) {
	x1 := autodiff.New(2)
	x2 := autodiff.New(0)
	w1 := autodiff.New(-3)
	w2 := autodiff.New(1)
	b := autodiff.New(6.8813735870195432)

	x1w1 := x1.Mul(w1)
	x2w2 := x2.Mul(w2)
	sum := x1w1.Add(x2w2)
	n := sum.Add(b)
	o := n.Tanh()
	o.Backward()

	assert.Equal(t, 1.0, o.Grad())
	assert.InDelta(t, 0.5, n.Grad(), tolerance)
	assert.InDelta(t, 0.5, sum.Grad(), tolerance)
	assert.InDelta(t, 0.5, x1w1.Grad(), tolerance)
	assert.InDelta(t, 0.5, x2w2.Grad(), tolerance)
	assert.InDelta(t, -1.5, x1.Grad(), tolerance)
	assert.InDelta(t, 0.5, x2.Grad(), tolerance)
	assert.InDelta(t, 1.0, w1.Grad(), tolerance)
	assert.Equal(t, 0.0, w2.Grad())
}

// TestValue_SelfReuse tests that a node used twice by one operation
// receives both contributions.
func TestValue_SelfReuse(t *testing.T) {
	x := autodiff.New(3)
	y := x.Mul(x)
	y.Backward()

	assert.Equal(t, 9.0, y.Data())
	assert.Equal(t, 2*x.Data(), x.Grad())

	z := autodiff.New(-4)
	w := z.Add(z)
	w.Backward()
	assert.Equal(t, 2.0, z.Grad())
}

// TestValue_SharedNode tests accumulation along two distinct paths.
func TestValue_SharedNode(t *testing.T) {
	x := autodiff.New(2)
	// d(left)/dx = 3 and d(right)/dx = 2x = 4.
	left := x.Mul(autodiff.Const(3))
	right := x.Pow(2)
	root := left.Add(right)
	root.Backward()

	assert.Equal(t, 10.0, root.Data())
	assert.Equal(t, 7.0, x.Grad())
}

// TestValue_BackwardAccumulates tests that repeated passes add up.
func TestValue_BackwardAccumulates(t *testing.T) {
	a, b, _, _, _, _, l := buildExpression()
	l.Backward()
	l.Backward()

	assert.Equal(t, 12.0, a.Grad())
	assert.Equal(t, -8.0, b.Grad())

	a.ZeroGrad()
	b.ZeroGrad()
	assert.Equal(t, 0.0, a.Grad())
}

// TestValue_BackwardOnLeaf tests that an unconnected node only seeds itself.
func TestValue_BackwardOnLeaf(t *testing.T) {
	v := autodiff.New(42)
	v.Backward()

	assert.Equal(t, 1.0, v.Grad())
	assert.Equal(t, 42.0, v.Data())
}

// TestValue_DerivedOperations tests the operations defined on top of the
// primitive ones.
func TestValue_DerivedOperations(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		build    func(a, b *autodiff.Value) *autodiff.Value
		want     float64
		wantGrad [2]float64
	}{
		{
			name:     "sub",
			a:        2,
			b:        3,
			build:    func(a, b *autodiff.Value) *autodiff.Value { return a.Sub(b) },
			want:     -1,
			wantGrad: [2]float64{1, -1},
		},
		{
			name:     "div",
			a:        2,
			b:        4,
			build:    func(a, b *autodiff.Value) *autodiff.Value { return a.Div(b) },
			want:     0.5,
			wantGrad: [2]float64{0.25, -0.125},
		},
		{
			name:     "neg",
			a:        2,
			b:        4,
			build:    func(a, _ *autodiff.Value) *autodiff.Value { return a.Neg() },
			want:     -2,
			wantGrad: [2]float64{-1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := autodiff.New(tt.a)
			b := autodiff.New(tt.b)
			out := tt.build(a, b)
			out.Backward()

			assert.InDelta(t, tt.want, out.Data(), 1e-12)
			assert.InDelta(t, tt.wantGrad[0], a.Grad(), 1e-12)
			assert.InDelta(t, tt.wantGrad[1], b.Grad(), 1e-12)
		})
	}
}

// TestValue_ConstOperands tests implicit wrapping of numeric operands.
func TestValue_ConstOperands(t *testing.T) {
	x := autodiff.New(5)
	y := x.Add(autodiff.Const(2)).Mul(autodiff.Const(3))
	y.Backward()

	assert.Equal(t, 21.0, y.Data())
	assert.Equal(t, 3.0, x.Grad())

	// The constant became a leaf input of the add node.
	add := y.Inputs()[0]
	require.Len(t, add.Inputs(), 2)
	assert.Same(t, x, add.Inputs()[0])
	assert.True(t, add.Inputs()[1].IsLeaf())
	assert.Equal(t, 2.0, add.Inputs()[1].Data())
}

// TestWrap tests operand coercion.
func TestWrap(t *testing.T) {
	v := autodiff.New(1)
	assert.Same(t, v, autodiff.Wrap(v))

	c := autodiff.Wrap(autodiff.Const(2.5))
	assert.Equal(t, 2.5, c.Data())
	assert.True(t, c.IsLeaf())
	assert.NotSame(t, c, autodiff.Wrap(autodiff.Const(2.5)))

	zero := autodiff.Wrap(nil)
	assert.Equal(t, 0.0, zero.Data())

	var missing *autodiff.Value
	zero = autodiff.Wrap(missing)
	require.NotNil(t, zero)
	assert.Equal(t, 0.0, zero.Data())
}

// TestNilValueOperand tests that a nil *Value operand behaves like Const(0).
func TestNilValueOperand(t *testing.T) {
	var missing *autodiff.Value

	x := autodiff.New(3)
	sum := x.Add(missing)
	assert.Equal(t, 3.0, sum.Data())

	total := autodiff.Sum([]*autodiff.Value{x, x}, missing)
	assert.Equal(t, 6.0, total.Data())

	total.Backward()
	assert.Equal(t, 2.0, x.Grad())
}

// TestValue_ReLU tests both sides of the rectifier.
func TestValue_ReLU(t *testing.T) {
	pos := autodiff.New(1.5)
	out := pos.ReLU()
	out.Backward()
	assert.Equal(t, 1.5, out.Data())
	assert.Equal(t, 1.0, pos.Grad())

	neg := autodiff.New(-1.5)
	out = neg.ReLU()
	out.Backward()
	assert.Equal(t, 0.0, out.Data())
	assert.Equal(t, 0.0, neg.Grad())
}

// TestValue_NumericDomain tests that degenerate inputs propagate IEEE specials.
func TestValue_NumericDomain(t *testing.T) {
	x := autodiff.New(1)
	zero := autodiff.New(0)
	q := x.Div(zero)
	q.Backward()

	assert.True(t, math.IsInf(q.Data(), 1))
	assert.True(t, math.IsInf(zero.Grad(), -1))

	r := autodiff.New(-8).Pow(1.0 / 3)
	assert.True(t, math.IsNaN(r.Data()))
}

// TestValue_SetData tests that updating a leaf does not touch derived values.
func TestValue_SetData(t *testing.T) {
	w := autodiff.New(1)
	out := w.Mul(autodiff.Const(2))
	w.SetData(5)

	assert.Equal(t, 5.0, w.Data())
	assert.Equal(t, 2.0, out.Data())
	assert.Equal(t, 10.0, w.Mul(autodiff.Const(2)).Data())
}

// TestValue_String tests diagnostic output.
func TestValue_String(t *testing.T) {
	a := autodiff.New(4)
	b := autodiff.New(-2)

	assert.Equal(t, "Value(4)", a.String())
	assert.Equal(t, "Value(-8 = 4 * -2)", a.Mul(b).String())
	assert.Equal(t, "Value(16 = ^2(4))", a.Pow(2).String())
	assert.Equal(t, "Value(0 = relu(-2))", b.ReLU().String())
}
