package gen

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is a deterministic 2D noise signal in [-1, 1]. For a fixed seed,
// repeated samples at the same (x, z) return the same value.
type Source interface {
	Sample(x, z float64) float64
}

// Sample01 maps a raw sample into [0, 1] for octave combination.
// The raw signal is clamped first: scaled simplex can graze past ±1.
func Sample01(s Source, x, z float64) float64 {
	v := s.Sample(x, z)
	if v < -1 {
		v = -1
	} else if v > 1 {
		v = 1
	}
	return (v + 1) / 2
}

// openSimplexSource adapts ojrac/opensimplex-go to the Source contract.
type openSimplexSource struct {
	noise opensimplex.Noise
}

// NewOpenSimplexSource builds an OpenSimplex-backed source for the seed.
func NewOpenSimplexSource(seed int64) Source {
	return &openSimplexSource{noise: opensimplex.New(seed)}
}

func (o *openSimplexSource) Sample(x, z float64) float64 {
	return o.noise.Eval2(x, z)
}

// NewSource builds a Source by backend name: "simplex" or "opensimplex".
func NewSource(backend string, seed int64) (Source, error) {
	switch backend {
	case "", "simplex":
		return NewSimplexSource(seed), nil
	case "opensimplex":
		return NewOpenSimplexSource(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise backend: %q", backend)
	}
}
