package gen

// Seeded 2D simplex noise after Ken Perlin's reference algorithm.
// Raw output is in [-1, 1].

var gradients = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// SimplexSource produces deterministic gradient noise from a seed.
// The permutation table is shuffled by an LCG over the seed, so two
// sources built from the same seed are bit-for-bit identical.
type SimplexSource struct {
	perm [512]int
}

// NewSimplexSource builds a noise source for the given seed. Construction
// is pure computation; no clock, no I/O.
func NewSimplexSource(seed int64) *SimplexSource {
	src := &SimplexSource{}

	var table [256]int
	for i := range table {
		table[i] = i
	}

	// Fisher-Yates driven by an LCG over the seed.
	state := seed
	for i := 255; i > 0; i-- {
		state = state*6364136223846793005 + 1442695040888963407
		j := int((state>>33)&0x7FFFFFFF) % (i + 1)
		if j < 0 {
			j = -j
		}
		table[i], table[j] = table[j], table[i]
	}

	// Doubled so lookups never wrap explicitly.
	for i := range src.perm {
		src.perm[i] = table[i&255]
	}
	return src
}

const (
	skew2   = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
)

// Sample returns simplex noise for (x, z) in the range [-1, 1].
func (s *SimplexSource) Sample(x, z float64) float64 {
	// Skew into simplex cell space.
	skew := (x + z) * skew2
	i := floorInt(x + skew)
	j := floorInt(z + skew)

	t := float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	z0 := z - (float64(j) - t)

	// Upper or lower triangle of the cell.
	var i1, j1 int
	if x0 > z0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + unskew2
	z1 := z0 - float64(j1) + unskew2
	x2 := x0 - 1.0 + 2.0*unskew2
	z2 := z0 - 1.0 + 2.0*unskew2

	ii := i & 255
	jj := j & 255

	total := s.corner(x0, z0, s.perm[ii+s.perm[jj]])
	total += s.corner(x1, z1, s.perm[ii+i1+s.perm[jj+j1]])
	total += s.corner(x2, z2, s.perm[ii+1+s.perm[jj+1]])

	// Scale to [-1, 1].
	return 70.0 * total
}

func (s *SimplexSource) corner(x, z float64, hash int) float64 {
	t := 0.5 - x*x - z*z
	if t < 0 {
		return 0
	}
	t *= t
	g := gradients[hash&7]
	return t * t * (g[0]*x + g[1]*z)
}

func floorInt(v float64) int {
	i := int(v)
	if v < float64(i) {
		return i - 1
	}
	return i
}
