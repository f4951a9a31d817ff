package gen

import "github.com/OCharnyshevich/voxel-engine/internal/engine/voxel"

// Block ids for generated terrain. The display metadata for these lives in
// the material registry; generation only needs the ids themselves.
const (
	blockStone voxel.BlockID = 1
	blockDirt  voxel.BlockID = 2
	blockGrass voxel.BlockID = 3
)

// Generator produces chunk columns deterministically from a seed.
type Generator interface {
	Generate(cx, cz int) *voxel.Chunk
	HeightAt(x, z int) int
}

// TerrainGenerator stacks stone/dirt/grass columns up to the octave height.
type TerrainGenerator struct {
	src     Source
	octaves []Octave
}

// NewTerrainGenerator builds a TerrainGenerator over a noise source with
// the default octave ladder.
func NewTerrainGenerator(src Source) *TerrainGenerator {
	return &TerrainGenerator{src: src, octaves: DefaultOctaves()}
}

// NewTerrainGeneratorOctaves uses a caller-supplied octave ladder.
func NewTerrainGeneratorOctaves(src Source, octaves []Octave) *TerrainGenerator {
	return &TerrainGenerator{src: src, octaves: octaves}
}

// HeightAt returns the number of solid blocks in the column at (x, z).
func (g *TerrainGenerator) HeightAt(x, z int) int {
	return Height(g.src, g.octaves, float64(x), float64(z), voxel.WorldHeight)
}

// Generate builds the chunk at (cx, cz): one height sample per column, then
// grass on top, three dirt below, stone down to the bottom.
func (g *TerrainGenerator) Generate(cx, cz int) *voxel.Chunk {
	c := voxel.NewChunk()
	for lx := 0; lx < voxel.ChunkSize; lx++ {
		for lz := 0; lz < voxel.ChunkSize; lz++ {
			h := g.HeightAt(cx*voxel.ChunkSize+lx, cz*voxel.ChunkSize+lz)
			fillColumn(c, lx, lz, h)
		}
	}
	return c
}

func fillColumn(c *voxel.Chunk, lx, lz, height int) {
	for y := 0; y < height; y++ {
		switch {
		case y == height-1:
			c.Set(lx, y, lz, blockGrass)
		case y >= height-4:
			c.Set(lx, y, lz, blockDirt)
		default:
			c.Set(lx, y, lz, blockStone)
		}
	}
}

// FlatGenerator produces the classic superflat column: stone up to y=2,
// dirt at y=3, grass at y=4. Used by tests and flat worlds.
type FlatGenerator struct{}

func NewFlatGenerator() *FlatGenerator { return &FlatGenerator{} }

func (g *FlatGenerator) Generate(_, _ int) *voxel.Chunk {
	c := voxel.NewChunk()
	for lx := 0; lx < voxel.ChunkSize; lx++ {
		for lz := 0; lz < voxel.ChunkSize; lz++ {
			c.Set(lx, 0, lz, blockStone)
			c.Set(lx, 1, lz, blockStone)
			c.Set(lx, 2, lz, blockStone)
			c.Set(lx, 3, lz, blockDirt)
			c.Set(lx, 4, lz, blockGrass)
		}
	}
	return c
}

func (g *FlatGenerator) HeightAt(_, _ int) int { return 5 }
