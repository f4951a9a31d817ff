// Package physics answers block-solidity queries for the collision layer.
// Queries compose world reads with the material registry and never mutate
// world data.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/voxel-engine/internal/engine/material"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/world"
)

// Collider answers solidity queries against a world and registry.
type Collider struct {
	world *world.World
	reg   *material.Registry
}

// NewCollider builds a collider over the given world and registry.
func NewCollider(w *world.World, reg *material.Registry) *Collider {
	return &Collider{world: w, reg: reg}
}

// SolidAt reports whether the block cell at world coordinates is a
// registered solid material. Absent cells (out of bounds, ungenerated) are
// not solid.
func (c *Collider) SolidAt(x, y, z int) bool {
	id, ok := c.world.GetBlock(x, y, z)
	if !ok {
		return false
	}
	return c.reg.Solid(id)
}

// SolidAtPoint is SolidAt for a continuous-space point: the point collides
// with the cell that contains it.
func (c *Collider) SolidAtPoint(p mgl64.Vec3) bool {
	return c.SolidAt(
		int(math.Floor(p.X())),
		int(math.Floor(p.Y())),
		int(math.Floor(p.Z())),
	)
}

// AABB is an axis-aligned box in continuous world space.
type AABB struct {
	Min, Max mgl64.Vec3
}

// BoxIntersects reports whether any solid block cell overlaps the box.
// The box edges are treated as exclusive on the max side, so a box resting
// exactly on top of a block does not collide with it.
func (c *Collider) BoxIntersects(box AABB) bool {
	x0 := int(math.Floor(box.Min.X()))
	y0 := int(math.Floor(box.Min.Y()))
	z0 := int(math.Floor(box.Min.Z()))
	x1 := lastCell(box.Min.X(), box.Max.X())
	y1 := lastCell(box.Min.Y(), box.Max.Y())
	z1 := lastCell(box.Min.Z(), box.Max.Z())

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				if c.SolidAt(x, y, z) {
					return true
				}
			}
		}
	}
	return false
}

// lastCell returns the highest cell index covered by [min, max).
func lastCell(min, max float64) int {
	last := int(math.Ceil(max)) - 1
	if first := int(math.Floor(min)); last < first {
		last = first
	}
	return last
}
