package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// NamedParameter pairs a parameter value with its name inside a module.
//
// Names are dot-separated paths, e.g. "0.3.weight.1" is weight 1 of neuron 3
// in layer 0 of an MLP.
type NamedParameter struct {
	Name  string
	Value *autodiff.Value
}

func prefixed(prefix string, params []NamedParameter) []NamedParameter {
	for i := range params {
		params[i].Name = prefix + "." + params[i].Name
	}
	return params
}

// StateDict returns a snapshot of every parameter value of m, keyed by name.
func StateDict(m Module) map[string]float64 {
	named := m.NamedParameters()
	stateDict := make(map[string]float64, len(named))
	for _, p := range named {
		stateDict[p.Name] = p.Value.Data()
	}
	return stateDict
}

// LoadStateDict copies values from stateDict into the parameters of m.
//
// Every parameter of m must be present; extra keys are ignored. Nothing is
// modified if a parameter is missing. Gradients are left untouched.
func LoadStateDict(m Module, stateDict map[string]float64) error {
	named := m.NamedParameters()
	for _, p := range named {
		if _, ok := stateDict[p.Name]; !ok {
			return fmt.Errorf("missing parameter %q in state dict", p.Name)
		}
	}
	for _, p := range named {
		p.Value.SetData(stateDict[p.Name])
	}
	return nil
}
