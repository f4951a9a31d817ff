package voxel

// Chunk owns the block ids for one ChunkSize×ChunkSize×WorldHeight column.
// Cells default to air. A chunk handed to the world store must not be
// mutated afterwards; writers clone first (see world.SetBlock).
type Chunk struct {
	blocks []BlockID
}

// NewChunk allocates an all-air chunk.
func NewChunk() *Chunk {
	return &Chunk{blocks: make([]BlockID, ChunkVolume)}
}

// ChunkFromBlocks builds a chunk from a full backing array, copying data.
// Returns nil if data is not exactly ChunkVolume long.
func ChunkFromBlocks(data []BlockID) *Chunk {
	if len(data) != ChunkVolume {
		return nil
	}
	c := &Chunk{blocks: make([]BlockID, ChunkVolume)}
	copy(c.blocks, data)
	return c
}

// index is the canonical cell layout. Callers guarantee bounds; every public
// accessor guards before calling.
func index(lx, y, lz int) int {
	return lx + lz*ChunkSize + y*ChunkSize*ChunkSize
}

func inChunk(lx, y, lz int) bool {
	return lx >= 0 && lx < ChunkSize && lz >= 0 && lz < ChunkSize && InHeight(y)
}

// At returns the block at local coordinates, or air when out of range.
func (c *Chunk) At(lx, y, lz int) BlockID {
	if !inChunk(lx, y, lz) {
		return Air
	}
	return c.blocks[index(lx, y, lz)]
}

// Set writes a block at local coordinates. Out-of-range writes are dropped.
func (c *Chunk) Set(lx, y, lz int, id BlockID) {
	if !inChunk(lx, y, lz) {
		return
	}
	c.blocks[index(lx, y, lz)] = id
}

// Clone returns an independent copy of the chunk.
func (c *Chunk) Clone() *Chunk {
	dup := &Chunk{blocks: make([]BlockID, ChunkVolume)}
	copy(dup.blocks, c.blocks)
	return dup
}

// Blocks returns a copy of the backing array for bulk consumers.
func (c *Chunk) Blocks() []BlockID {
	out := make([]BlockID, ChunkVolume)
	copy(out, c.blocks)
	return out
}
