package nn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// LayerSpec describes one layer of an MLP.
type LayerSpec struct {
	Neurons    int        `json:"neurons"`
	Activation Activation `json:"activation"`
}

// String formats the spec as "<neurons>:<activation>", or just "<neurons>"
// for Identity.
func (s LayerSpec) String() string {
	if s.Activation == Identity {
		return strconv.Itoa(s.Neurons)
	}
	return fmt.Sprintf("%d:%s", s.Neurons, s.Activation)
}

// ParseLayerSpecs parses a comma-separated list of layer specs, e.g.
// "4:tanh,4:tanh,1". A spec without an activation uses Identity.
func ParseLayerSpecs(s string) ([]LayerSpec, error) {
	parts := strings.Split(s, ",")
	specs := make([]LayerSpec, 0, len(parts))
	for _, part := range parts {
		countStr, actStr, _ := strings.Cut(strings.TrimSpace(part), ":")
		count, err := strconv.Atoi(countStr)
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("%w: invalid neuron count in layer spec %q", ErrInvalidConfig, part)
		}
		act, err := ParseActivation(actStr)
		if err != nil {
			return nil, fmt.Errorf("layer spec %q: %w", part, err)
		}
		specs = append(specs, LayerSpec{Neurons: count, Activation: act})
	}
	return specs, nil
}

// MLP is a multi-layer perceptron: layers applied in order, each layer's
// outputs being the next layer's inputs.
//
// Example:
//
//	mlp, err := nn.NewMLP(3, []nn.LayerSpec{
//	    {Neurons: 4, Activation: nn.Tanh},
//	    {Neurons: 4, Activation: nn.Tanh},
//	    {Neurons: 1, Activation: nn.Tanh},
//	})
//
//	out, err := mlp.Forward(autodiff.NewValues([]float64{2, 3, -1}))
type MLP struct {
	nIn    int
	layers []*Layer
}

// NewMLP creates a network with nIn inputs and one layer per spec.
// Layer i+1 receives as many inputs as layer i has neurons.
func NewMLP(nIn int, specs []LayerSpec, opts ...Option) (*MLP, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: network must have at least one layer", ErrInvalidConfig)
	}

	layers := make([]*Layer, len(specs))
	in := nIn
	for i, spec := range specs {
		layer, err := NewLayer(in, spec.Neurons, spec.Activation, opts...)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers[i] = layer
		in = spec.Neurons
	}
	return &MLP{nIn: nIn, layers: layers}, nil
}

// NewMLPFromLayers chains existing layers into a network.
//
// Returns a *DimensionError if a layer's input count differs from the
// previous layer's neuron count.
func NewMLPFromLayers(layers ...*Layer) (*MLP, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: network must have at least one layer", ErrInvalidConfig)
	}
	for i := 1; i < len(layers); i++ {
		op := fmt.Sprintf("NewMLPFromLayers: layer %d", i)
		if err := checkInputs(op, layers[i-1].NumOutputs(), layers[i].NumInputs()); err != nil {
			return nil, err
		}
	}
	return &MLP{nIn: layers[0].NumInputs(), layers: layers}, nil
}

// Forward feeds x through every layer and returns the last layer's outputs.
//
// Returns a *DimensionError if len(x) differs from the network's input count.
func (m *MLP) Forward(x []*autodiff.Value) ([]*autodiff.Value, error) {
	if err := checkInputs("MLP.Forward", m.nIn, len(x)); err != nil {
		return nil, err
	}

	out := x
	for i, layer := range m.layers {
		var err error
		if out, err = layer.Forward(out); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return out, nil
}

// Parameters returns the parameters of every layer, layer by layer.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// NamedParameters prefixes each layer's parameter names with its index,
// e.g. "0.3.weight.1".
func (m *MLP) NamedParameters() []NamedParameter {
	var named []NamedParameter
	for i, layer := range m.layers {
		named = append(named, prefixed(strconv.Itoa(i), layer.NamedParameters())...)
	}
	return named
}

// ZeroGrad resets the gradients of every layer.
func (m *MLP) ZeroGrad() {
	for _, layer := range m.layers {
		layer.ZeroGrad()
	}
}

// StateDict returns a snapshot of every parameter value, keyed by name.
func (m *MLP) StateDict() map[string]float64 {
	return StateDict(m)
}

// LoadStateDict copies parameter values from stateDict.
func (m *MLP) LoadStateDict(stateDict map[string]float64) error {
	return LoadStateDict(m, stateDict)
}

// Layers returns the network's layers.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// NumInputs returns the number of inputs the network expects.
func (m *MLP) NumInputs() int {
	return m.nIn
}

// NumOutputs returns the number of neurons in the last layer.
func (m *MLP) NumOutputs() int {
	return m.layers[len(m.layers)-1].NumOutputs()
}

// Specs returns the layer specs that describe the network's shape.
func (m *MLP) Specs() []LayerSpec {
	specs := make([]LayerSpec, len(m.layers))
	for i, layer := range m.layers {
		specs[i] = LayerSpec{Neurons: layer.NumOutputs(), Activation: layer.Activation()}
	}
	return specs
}

// String describes the network, one layer per line.
func (m *MLP) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MLP(%d inputs, %d parameters)", m.nIn, len(m.Parameters()))
	for _, layer := range m.layers {
		b.WriteString("\n  ")
		b.WriteString(layer.String())
	}
	return b.String()
}
