package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/serialization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "micrograd "+version+"\n", out.String())
}

func TestRun_InitAndInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.born")

	var out bytes.Buffer
	err := run([]string{"init", "-inputs", "2", "-layers", "3:relu,1", "-seed", "5", "-o", path}, &out)
	require.NoError(t, err)
	// (2+1)*3 + (3+1)*1
	assert.Contains(t, out.String(), "(13 parameters)")

	out.Reset()
	require.NoError(t, run([]string{"inspect", path}, &out))
	text := out.String()
	assert.Contains(t, text, "Model:      MLP")
	assert.Contains(t, text, "Metadata:   seed=5")
	assert.Contains(t, text, "Layer(3 neurons of 2 inputs, relu)")
	assert.Contains(t, text, "Layer(1 neurons of 3 inputs, identity)")
}

func TestRun_InspectMetadataSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.born")
	mlp, err := nn.NewMLP(1, []nn.LayerSpec{{Neurons: 1}})
	require.NoError(t, err)
	meta := map[string]string{"zeta": "3", "alpha": "1", "mid": "2", "beta": "4"}
	require.NoError(t, serialization.SaveFile(path, mlp, meta))

	for range 5 {
		var out bytes.Buffer
		require.NoError(t, run([]string{"inspect", path}, &out))

		var keys []string
		for _, line := range strings.Split(out.String(), "\n") {
			if rest, ok := strings.CutPrefix(line, "Metadata:   "); ok {
				key, _, _ := strings.Cut(rest, "=")
				keys = append(keys, key)
			}
		}
		assert.Equal(t, []string{"alpha", "beta", "mid", "zeta"}, keys)
	}
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	tests := [][]string{
		{"train"},
		{"inspect"},
		{"inspect", filepath.Join(t.TempDir(), "missing.born")},
		{"init", "-layers", "0:tanh"},
		{"init", "-bogus"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			assert.Error(t, run(args, &out))
		})
	}
}
