package nn_test

import (
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoMLP(t *testing.T) *nn.MLP {
	t.Helper()
	mlp, err := nn.NewMLP(3, []nn.LayerSpec{
		{Neurons: 4, Activation: nn.Tanh},
		{Neurons: 4, Activation: nn.Tanh},
		{Neurons: 1, Activation: nn.Tanh},
	}, seeded())
	require.NoError(t, err)
	return mlp
}

// TestMLP_Dimensions tests the parameter count and input validation.
func TestMLP_Dimensions(t *testing.T) {
	mlp := newDemoMLP(t)

	// (3+1)*4 + (4+1)*4 + (4+1)*1
	assert.Len(t, mlp.Parameters(), 41)
	assert.Equal(t, 3, mlp.NumInputs())
	assert.Equal(t, 1, mlp.NumOutputs())
	require.Len(t, mlp.Layers(), 3)
	assert.Equal(t, 4, mlp.Layers()[1].NumInputs())

	out, err := mlp.Forward(autodiff.NewValues([]float64{2, 3, -1}))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Greater(t, out[0].Data(), -1.0)
	assert.Less(t, out[0].Data(), 1.0)

	for _, bad := range [][]float64{{}, {1, 2}, {1, 2, 3, 4}} {
		_, err := mlp.Forward(autodiff.NewValues(bad))
		assert.ErrorIs(t, err, nn.ErrDimensionMismatch, "input of length %d", len(bad))
	}
}

// TestMLP_ParameterOrderStable tests that Parameters returns the same nodes
// in the same order on every call.
func TestMLP_ParameterOrderStable(t *testing.T) {
	mlp := newDemoMLP(t)
	first := mlp.Parameters()
	second := mlp.Parameters()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Same(t, first[i], second[i])
	}

	// The first parameters are the weights of neuron 0 in layer 0.
	n0 := mlp.Layers()[0].Neurons()[0]
	assert.Same(t, n0.Weights()[0], first[0])
	assert.Same(t, n0.Bias(), first[3])
}

// TestMLP_InvalidConfig tests constructor validation.
func TestMLP_InvalidConfig(t *testing.T) {
	_, err := nn.NewMLP(3, nil)
	assert.ErrorIs(t, err, nn.ErrInvalidConfig)

	_, err = nn.NewMLP(3, []nn.LayerSpec{{Neurons: 4}, {Neurons: 0}})
	assert.ErrorIs(t, err, nn.ErrInvalidConfig)
}

// TestNewMLPFromLayers tests chaining layers with matching and mismatched
// arity.
func TestNewMLPFromLayers(t *testing.T) {
	l1, err := nn.NewLayer(2, 3, nn.ReLU, seeded())
	require.NoError(t, err)
	l2, err := nn.NewLayer(3, 1, nn.Identity, seeded())
	require.NoError(t, err)
	bad, err := nn.NewLayer(4, 1, nn.Identity, seeded())
	require.NoError(t, err)

	mlp, err := nn.NewMLPFromLayers(l1, l2)
	require.NoError(t, err)
	assert.Equal(t, 2, mlp.NumInputs())
	assert.Equal(t, []nn.LayerSpec{{Neurons: 3, Activation: nn.ReLU}, {Neurons: 1}}, mlp.Specs())

	_, err = nn.NewMLPFromLayers(l1, bad)
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)

	_, err = nn.NewMLPFromLayers()
	assert.ErrorIs(t, err, nn.ErrInvalidConfig)
}

// TestMLP_ZeroGrad tests that gradients reset and do not leak into the next
// pass.
func TestMLP_ZeroGrad(t *testing.T) {
	mlp := newDemoMLP(t)
	x := []float64{2, 3, -1}

	pass := func() []float64 {
		out, err := mlp.Forward(autodiff.NewValues(x))
		require.NoError(t, err)
		loss, err := nn.SquaredError(out, []float64{1})
		require.NoError(t, err)
		loss.Backward()

		grads := make([]float64, 0, 41)
		for _, p := range mlp.Parameters() {
			grads = append(grads, p.Grad())
		}
		return grads
	}

	first := pass()
	mlp.ZeroGrad()
	for _, p := range mlp.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
	assert.Equal(t, first, pass())
}

// TestMLP_StateDict tests copying parameters between networks.
func TestMLP_StateDict(t *testing.T) {
	src := newDemoMLP(t)
	dst, err := nn.NewMLP(3, src.Specs())
	require.NoError(t, err)

	stateDict := src.StateDict()
	assert.Len(t, stateDict, 41)
	assert.Contains(t, stateDict, "0.0.weight.0")
	assert.Contains(t, stateDict, "2.0.bias")

	require.NoError(t, dst.LoadStateDict(stateDict))
	for i, p := range dst.Parameters() {
		assert.Equal(t, src.Parameters()[i].Data(), p.Data())
	}

	x := []float64{0.5, 1, 1}
	a, err := src.Forward(autodiff.NewValues(x))
	require.NoError(t, err)
	b, err := dst.Forward(autodiff.NewValues(x))
	require.NoError(t, err)
	assert.Equal(t, a[0].Data(), b[0].Data())

	delete(stateDict, "1.2.bias")
	before := dst.Parameters()[0].Data()
	stateDict["0.0.weight.0"] = before + 1
	assert.Error(t, dst.LoadStateDict(stateDict))
	assert.Equal(t, before, dst.Parameters()[0].Data(), "failed load must not modify parameters")
}

// TestMLP_Training tests that plain gradient descent lowers the loss on a
// small dataset.
func TestMLP_Training(t *testing.T) {
	mlp := newDemoMLP(t)
	xs := [][]float64{
		{2, 3, -1},
		{3, -1, 0.5},
		{0.5, 1, 1},
		{1, 1, -1},
	}
	ys := []float64{1, -1, -1, 1}

	evaluate := func() *autodiff.Value {
		preds := make([]*autodiff.Value, 0, len(xs))
		for _, x := range xs {
			out, err := mlp.Forward(autodiff.NewValues(x))
			require.NoError(t, err)
			preds = append(preds, out...)
		}
		loss, err := nn.SquaredError(preds, ys)
		require.NoError(t, err)
		return loss
	}

	initial := evaluate().Data()
	const lr = 0.05
	for range 100 {
		loss := evaluate()
		loss.Backward()
		for _, p := range mlp.Parameters() {
			p.SetData(p.Data() - lr*p.Grad())
		}
		mlp.ZeroGrad()
	}

	assert.Less(t, evaluate().Data(), initial)
}

// TestParseLayerSpecs tests the textual layer description.
func TestParseLayerSpecs(t *testing.T) {
	specs, err := nn.ParseLayerSpecs("4:tanh, 32:relu,10")
	require.NoError(t, err)
	assert.Equal(t, []nn.LayerSpec{
		{Neurons: 4, Activation: nn.Tanh},
		{Neurons: 32, Activation: nn.ReLU},
		{Neurons: 10, Activation: nn.Identity},
	}, specs)
	assert.Equal(t, "4:tanh", specs[0].String())
	assert.Equal(t, "10", specs[2].String())

	for _, bad := range []string{"", "0:tanh", "x:relu", "4:sigmoid", "4,,2"} {
		_, err := nn.ParseLayerSpecs(bad)
		assert.ErrorIs(t, err, nn.ErrInvalidConfig, "spec %q", bad)
	}
}

// TestMLP_String tests the structural summary.
func TestMLP_String(t *testing.T) {
	mlp := newDemoMLP(t)
	want := "MLP(3 inputs, 41 parameters)\n" +
		"  Layer(4 neurons of 3 inputs, tanh)\n" +
		"  Layer(4 neurons of 4 inputs, tanh)\n" +
		"  Layer(1 neurons of 4 inputs, tanh)"
	assert.Equal(t, want, mlp.String())
}
