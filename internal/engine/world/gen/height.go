package gen

// Octave is one noise layer. Stacks are ordered by strictly decreasing
// amplitude and strictly increasing frequency.
type Octave struct {
	Amplitude float64
	Frequency float64
}

// DefaultOctaves is the standard three-layer ladder: each octave doubles
// the frequency and halves the amplitude of the previous one.
func DefaultOctaves() []Octave {
	return []Octave{
		{Amplitude: 1, Frequency: 0.01},
		{Amplitude: 0.5, Frequency: 0.02},
		{Amplitude: 0.25, Frequency: 0.04},
	}
}

// Height combines the octaves at world column (x, z) into a terrain height
// in [0, maxHeight]. The weighted sum is divided by the total amplitude of
// the same octaves, so the bound holds for any ladder; an unnormalized sum
// would let taller stacks exceed maxHeight. Total function: maxHeight <= 0
// yields 0, never an error.
func Height(src Source, octaves []Octave, x, z float64, maxHeight int) int {
	if maxHeight <= 0 || len(octaves) == 0 {
		return 0
	}

	var sum, totalAmp float64
	for _, oct := range octaves {
		sum += Sample01(src, x*oct.Frequency, z*oct.Frequency) * oct.Amplitude
		totalAmp += oct.Amplitude
	}

	h := int(sum / totalAmp * float64(maxHeight))
	if h < 0 {
		h = 0
	}
	if h > maxHeight {
		h = maxHeight
	}
	return h
}
