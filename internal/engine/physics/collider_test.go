package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/voxel-engine/internal/engine/material"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/world"
)

func testCollider() (*world.World, *Collider) {
	w := world.New(1)
	return w, NewCollider(w, material.Default())
}

func TestSolidAt(t *testing.T) {
	w, c := testCollider()
	w.SetBlock(0, 10, 0, 1)

	if !c.SolidAt(0, 10, 0) {
		t.Error("stone cell should be solid")
	}
	if c.SolidAt(0, 11, 0) {
		t.Error("air cell in materialized chunk should not be solid")
	}
	if c.SolidAt(100, 10, 100) {
		t.Error("ungenerated cell should not be solid")
	}
	if c.SolidAt(0, -1, 0) || c.SolidAt(0, 1000, 0) {
		t.Error("out-of-bounds cells should not be solid")
	}
}

func TestSolidAtPointNegativeCoords(t *testing.T) {
	w, c := testCollider()
	w.SetBlock(-1, 5, -1, 1)

	if !c.SolidAtPoint(mgl64.Vec3{-0.5, 5.5, -0.5}) {
		t.Error("point inside block (-1,5,-1) should collide")
	}
	if c.SolidAtPoint(mgl64.Vec3{0.5, 5.5, 0.5}) {
		t.Error("point in ungenerated cell should not collide")
	}
}

func TestBoxIntersects(t *testing.T) {
	w, c := testCollider()
	w.SetBlock(2, 10, 2, 1)

	overlap := AABB{Min: mgl64.Vec3{2.4, 10.2, 2.4}, Max: mgl64.Vec3{2.8, 11.8, 2.8}}
	if !c.BoxIntersects(overlap) {
		t.Error("box overlapping the block should intersect")
	}

	clear := AABB{Min: mgl64.Vec3{4, 10, 4}, Max: mgl64.Vec3{4.9, 11.8, 4.9}}
	if c.BoxIntersects(clear) {
		t.Error("box away from the block should not intersect")
	}

	// Resting exactly on top of the block: max side is exclusive.
	resting := AABB{Min: mgl64.Vec3{2.2, 11, 2.2}, Max: mgl64.Vec3{2.8, 12.8, 2.8}}
	if c.BoxIntersects(resting) {
		t.Error("box resting on the block surface should not intersect")
	}
}
