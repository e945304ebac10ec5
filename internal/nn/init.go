package nn

import "math/rand"

// Option configures parameter initialization.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand draws initial weights and biases from rng instead of the global
// source. Use a seeded source for reproducible networks.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// uniform draws a value from [lo, hi).
func (o *options) uniform(lo, hi float64) float64 {
	if o.rng != nil {
		return lo + o.rng.Float64()*(hi-lo)
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return lo + rand.Float64()*(hi-lo)
}
