package world

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/voxel-engine/internal/engine/voxel"
)

// ErrShapeMismatch is returned by AddChunk when the supplied block data does
// not cover exactly one chunk volume. The call applies nothing in that case.
var ErrShapeMismatch = errors.New("chunk data shape mismatch")

// World is the authoritative sparse block store. Chunks are materialized on
// first write and never destroyed during play. Mutations follow a
// single-writer contract and use copy-on-write at chunk granularity, so a
// Snapshot holder keeps seeing its chunks unchanged as the store advances.
type World struct {
	id      string
	seed    int64
	chunks  map[voxel.ChunkCoord]*voxel.Chunk
	version uint64

	// Player position is stored for external consumers (camera, physics);
	// the store itself never reads it.
	player mgl64.Vec3
}

// New creates an empty world for the given generation seed.
func New(seed int64) *World {
	return &World{
		id:     uuid.NewString(),
		seed:   seed,
		chunks: make(map[voxel.ChunkCoord]*voxel.Chunk),
	}
}

// ID returns the session identifier assigned at creation.
func (w *World) ID() string { return w.id }

// Seed returns the generation seed fixed at creation.
func (w *World) Seed() int64 { return w.seed }

// Version returns a counter that increases on every effective mutation.
// Consumers poll it and take a fresh Snapshot when it moves.
func (w *World) Version() uint64 { return w.version }

// GetBlock returns the block id at world coordinates. The second result is
// false when y is outside [0, WorldHeight) or the chunk was never
// materialized; reads have no side effects. An explicit air block reads as
// (Air, true), distinct from absent.
func (w *World) GetBlock(x, y, z int) (voxel.BlockID, bool) {
	if !voxel.InHeight(y) {
		return voxel.Air, false
	}
	c, ok := w.chunks[voxel.ChunkCoordOf(x, z)]
	if !ok {
		return voxel.Air, false
	}
	lx, lz := voxel.LocalOf(x, z)
	return c.At(lx, y, lz), true
}

// SetBlock writes a block id at world coordinates. Writes outside the
// vertical bounds are dropped. The target chunk is materialized all-air if
// needed, then replaced by a written clone rather than mutated in place.
func (w *World) SetBlock(x, y, z int, id voxel.BlockID) {
	if !voxel.InHeight(y) {
		return
	}

	cc := voxel.ChunkCoordOf(x, z)
	next := voxel.NewChunk()
	if cur, ok := w.chunks[cc]; ok {
		next = cur.Clone()
	}

	lx, lz := voxel.LocalOf(x, z)
	next.Set(lx, y, lz, id)
	w.chunks[cc] = next
	w.version++
}

// RemoveBlock clears the block at world coordinates. Removing inside
// ungenerated terrain is legal and simply materializes an empty chunk.
func (w *World) RemoveBlock(x, y, z int) {
	w.SetBlock(x, y, z, voxel.Air)
}

// AddChunk inserts or replaces the chunk at (cx, cz) in one atomic step.
// data must hold exactly ChunkVolume ids; otherwise ErrShapeMismatch is
// returned and any existing chunk stays untouched. The data is copied.
func (w *World) AddChunk(cx, cz int, data []voxel.BlockID) error {
	c := voxel.ChunkFromBlocks(data)
	if c == nil {
		return fmt.Errorf("chunk (%d,%d): got %d blocks, want %d: %w",
			cx, cz, len(data), voxel.ChunkVolume, ErrShapeMismatch)
	}
	w.chunks[voxel.ChunkCoord{X: cx, Z: cz}] = c
	w.version++
	return nil
}

// Chunk returns the current chunk at (cx, cz). The returned chunk is
// immutable under the copy-on-write discipline; callers may read it freely
// but must go through SetBlock/AddChunk to change world state.
func (w *World) Chunk(cx, cz int) (*voxel.Chunk, bool) {
	c, ok := w.chunks[voxel.ChunkCoord{X: cx, Z: cz}]
	return c, ok
}

// ChunkCount returns the number of materialized chunks.
func (w *World) ChunkCount() int { return len(w.chunks) }

// Reset replaces all world state with a fresh, empty instance keyed by a
// new seed. Snapshots taken before the reset remain valid views of the old
// state.
func (w *World) Reset(seed int64) {
	w.id = uuid.NewString()
	w.seed = seed
	w.chunks = make(map[voxel.ChunkCoord]*voxel.Chunk)
	w.version++
}

// SetPlayerPosition records the player position for external consumers.
func (w *World) SetPlayerPosition(pos mgl64.Vec3) {
	w.player = pos
	w.version++
}

// PlayerPosition returns the last recorded player position.
func (w *World) PlayerPosition() mgl64.Vec3 { return w.player }
