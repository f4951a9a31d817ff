package voxel

// BlockID identifies a block material. The zero value is air.
type BlockID uint8

// Air is the reserved id for the absence of a block.
const Air BlockID = 0

const (
	// ChunkSize is the horizontal span of a chunk in blocks.
	ChunkSize = 16
	// WorldHeight is the fixed vertical span of every world. Chunks cover
	// the full height; there is no vertical chunking.
	WorldHeight = 128
	// ChunkVolume is the number of cells in one chunk's backing array.
	ChunkVolume = ChunkSize * ChunkSize * WorldHeight
)

// ChunkCoord identifies a chunk by its position in chunk-space.
type ChunkCoord struct {
	X, Z int
}

// BlockPos is a block position in world space.
type BlockPos struct {
	X, Y, Z int
}

// ChunkCoordOf returns the chunk containing the given world x/z column.
// Floor division, so negative coordinates map to negative chunks:
// ChunkCoordOf(-1, -1) is {-1, -1}, not {0, 0}.
func ChunkCoordOf(x, z int) ChunkCoord {
	return ChunkCoord{X: floorDiv(x, ChunkSize), Z: floorDiv(z, ChunkSize)}
}

// LocalOf translates world x/z to in-chunk coordinates, always in [0, ChunkSize).
// Go's truncating % yields negative remainders for negative inputs, which would
// corrupt the linear chunk index, hence the add-then-mod adjustment.
func LocalOf(x, z int) (lx, lz int) {
	return floorMod(x, ChunkSize), floorMod(z, ChunkSize)
}

// InHeight reports whether y is inside the vertical world bounds.
func InHeight(y int) bool {
	return y >= 0 && y < WorldHeight
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

func floorMod(a, n int) int {
	return (a%n + n) % n
}
