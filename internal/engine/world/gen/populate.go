package gen

import (
	"fmt"

	"github.com/OCharnyshevich/voxel-engine/internal/engine/voxel"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/world"
)

// Populate materializes every chunk in a square radius around the origin,
// handing finished chunks to the world via AddChunk. Generation is pure
// computation per chunk; the world is only touched at publication.
func Populate(w *world.World, g Generator, radius int) error {
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			c := g.Generate(cx, cz)
			if err := w.AddChunk(cx, cz, c.Blocks()); err != nil {
				return fmt.Errorf("populate chunk (%d,%d): %w", cx, cz, err)
			}
		}
	}
	return nil
}

// NewGenerator builds a Generator by name: "terrain" or "flat".
func NewGenerator(kind, backend string, seed int64) (Generator, error) {
	switch kind {
	case "", "terrain":
		src, err := NewSource(backend, seed)
		if err != nil {
			return nil, err
		}
		return NewTerrainGenerator(src), nil
	case "flat":
		return NewFlatGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown generator type: %q", kind)
	}
}

// SpawnHeight returns the terrain height at the origin plus one, a safe
// y for placing the player.
func SpawnHeight(g Generator) int {
	h := g.HeightAt(0, 0) + 1
	if h > voxel.WorldHeight-1 {
		h = voxel.WorldHeight - 1
	}
	return h
}
