package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// SquaredError returns the sum of (prediction - target)² over all pairs.
//
// Returns a *DimensionError if the lengths differ.
//
// Example:
//
//	out, _ := mlp.Forward(x)
//	loss, _ := nn.SquaredError(out, []float64{1})
//	loss.Backward()
func SquaredError(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	if err := checkInputs("SquaredError", len(predictions), len(targets)); err != nil {
		return nil, err
	}

	squares := make([]*autodiff.Value, len(predictions))
	for i, p := range predictions {
		squares[i] = p.Sub(autodiff.Const(targets[i])).Pow(2)
	}
	return autodiff.Sum(squares, nil), nil
}

// MSELoss returns the mean of (prediction - target)².
//
// Returns a *DimensionError if the lengths differ and ErrInvalidConfig if
// they are empty.
func MSELoss(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	if len(predictions) == 0 {
		return nil, fmt.Errorf("%w: MSELoss of empty predictions", ErrInvalidConfig)
	}
	sum, err := SquaredError(predictions, targets)
	if err != nil {
		return nil, err
	}
	return sum.Div(autodiff.Const(float64(len(predictions)))), nil
}

// OneHot returns a vector of n zeros with a 1 at position label.
func OneHot(label, n int) ([]float64, error) {
	if label < 0 || label >= n {
		return nil, fmt.Errorf("%w: label %d out of range [0, %d)", ErrInvalidConfig, label, n)
	}
	v := make([]float64, n)
	v[label] = 1
	return v, nil
}

// ArgMax returns the index of the largest value, the first one on ties.
// Returns -1 for an empty slice.
func ArgMax(values []*autodiff.Value) int {
	best := -1
	for i, v := range values {
		if best < 0 || v.Data() > values[best].Data() {
			best = i
		}
	}
	return best
}
