// Package render extracts the per-chunk "visible solid block" descriptor
// lists the rendering surface consumes. It never mutates world data; all
// reads go through an immutable snapshot.
package render

import (
	"github.com/OCharnyshevich/voxel-engine/internal/engine/material"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/voxel"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/world"
)

// Descriptor is one visible solid block: world position plus material.
type Descriptor struct {
	Pos      voxel.BlockPos    `json:"pos"`
	ID       voxel.BlockID     `json:"id"`
	Material material.Material `json:"material"`
}

var faceOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// ChunkDescriptors walks one chunk of the snapshot and returns every solid
// block with at least one exposed face. A face is exposed when the
// neighbouring cell is air, transparent, outside the vertical bounds, or in
// a chunk that was never materialized.
func ChunkDescriptors(snap world.Snapshot, reg *material.Registry, cx, cz int) []Descriptor {
	c, ok := snap.Chunk(cx, cz)
	if !ok {
		return nil
	}

	var out []Descriptor
	baseX := cx * voxel.ChunkSize
	baseZ := cz * voxel.ChunkSize
	for y := 0; y < voxel.WorldHeight; y++ {
		for lz := 0; lz < voxel.ChunkSize; lz++ {
			for lx := 0; lx < voxel.ChunkSize; lx++ {
				id := c.At(lx, y, lz)
				m, known := reg.ByID(id)
				if !known || !m.Solid {
					continue
				}
				wx, wz := baseX+lx, baseZ+lz
				if exposed(snap, reg, wx, y, wz) {
					out = append(out, Descriptor{
						Pos:      voxel.BlockPos{X: wx, Y: y, Z: wz},
						ID:       id,
						Material: m,
					})
				}
			}
		}
	}
	return out
}

func exposed(snap world.Snapshot, reg *material.Registry, x, y, z int) bool {
	for _, off := range faceOffsets {
		nid, present := snap.GetBlock(x+off[0], y+off[1], z+off[2])
		if !present {
			return true
		}
		m, known := reg.ByID(nid)
		if !known || !m.Solid || m.Transparent {
			return true
		}
	}
	return false
}
