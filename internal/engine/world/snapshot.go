package world

import "github.com/OCharnyshevich/voxel-engine/internal/engine/voxel"

// Snapshot is an immutable view of the chunk collection at one version.
// Later writes replace chunks in the store without touching the ones held
// here, so a renderer or physics consumer can iterate without coordination.
type Snapshot struct {
	version uint64
	chunks  map[voxel.ChunkCoord]*voxel.Chunk
}

// Snapshot captures the current chunk collection. The map is copied; the
// chunk values are shared but never mutated after publication.
func (w *World) Snapshot() Snapshot {
	chunks := make(map[voxel.ChunkCoord]*voxel.Chunk, len(w.chunks))
	for cc, c := range w.chunks {
		chunks[cc] = c
	}
	return Snapshot{version: w.version, chunks: chunks}
}

// Version returns the store version the snapshot was taken at.
func (s Snapshot) Version() uint64 { return s.version }

// Chunk returns the snapshot's chunk at (cx, cz), if materialized.
func (s Snapshot) Chunk(cx, cz int) (*voxel.Chunk, bool) {
	c, ok := s.chunks[voxel.ChunkCoord{X: cx, Z: cz}]
	return c, ok
}

// GetBlock reads a block from the snapshot with world-store semantics:
// absent outside the vertical bounds or in unmaterialized chunks.
func (s Snapshot) GetBlock(x, y, z int) (voxel.BlockID, bool) {
	if !voxel.InHeight(y) {
		return voxel.Air, false
	}
	c, ok := s.chunks[voxel.ChunkCoordOf(x, z)]
	if !ok {
		return voxel.Air, false
	}
	lx, lz := voxel.LocalOf(x, z)
	return c.At(lx, y, lz), true
}

// Coords returns the coordinates of every chunk in the snapshot.
func (s Snapshot) Coords() []voxel.ChunkCoord {
	out := make([]voxel.ChunkCoord, 0, len(s.chunks))
	for cc := range s.chunks {
		out = append(out, cc)
	}
	return out
}
