// Package inventory holds item stacks for the interaction/UI layer. The UI
// reflects these counts; it never computes them independently.
package inventory

import (
	"sync"

	"github.com/OCharnyshevich/voxel-engine/internal/engine/voxel"
)

const (
	// SlotCount is the number of inventory slots.
	SlotCount = 36
	// MaxStack is the largest count a single slot can hold.
	MaxStack = 64
)

// Slot is one inventory slot: a material id and a stack count.
// A zero Count means the slot is empty regardless of ID.
type Slot struct {
	ID    voxel.BlockID
	Count int
}

// IsEmpty reports whether the slot holds nothing.
func (s Slot) IsEmpty() bool { return s.Count == 0 }

// Inventory is a fixed array of stacks.
//
// Stacking policy: AddItem tops up existing non-full stacks of the same
// material first, left to right, then spills into the first empty slot.
// This is the single policy this engine implements.
type Inventory struct {
	mu    sync.RWMutex
	slots [SlotCount]Slot
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{}
}

// AddItem inserts count items of the given material and returns how many
// did not fit. Air cannot be carried.
func (inv *Inventory) AddItem(id voxel.BlockID, count int) (leftover int) {
	if id == voxel.Air || count <= 0 {
		return count
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	// Pass 1: existing stacks.
	for i := range inv.slots {
		s := &inv.slots[i]
		if s.IsEmpty() || s.ID != id || s.Count >= MaxStack {
			continue
		}
		take := min(count, MaxStack-s.Count)
		s.Count += take
		count -= take
		if count == 0 {
			return 0
		}
	}

	// Pass 2: empty slots.
	for i := range inv.slots {
		s := &inv.slots[i]
		if !s.IsEmpty() {
			continue
		}
		take := min(count, MaxStack)
		*s = Slot{ID: id, Count: take}
		count -= take
		if count == 0 {
			return 0
		}
	}

	return count
}

// RemoveOne takes a single item out of the slot at index. The second result
// is false when the slot is empty or the index invalid.
func (inv *Inventory) RemoveOne(index int) (voxel.BlockID, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if index < 0 || index >= SlotCount || inv.slots[index].IsEmpty() {
		return voxel.Air, false
	}
	s := &inv.slots[index]
	id := s.ID
	s.Count--
	if s.Count == 0 {
		*s = Slot{}
	}
	return id, true
}

// Count returns the total number of items of the given material.
func (inv *Inventory) Count(id voxel.BlockID) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	total := 0
	for _, s := range inv.slots {
		if !s.IsEmpty() && s.ID == id {
			total += s.Count
		}
	}
	return total
}

// Slot returns a copy of the slot at index.
func (inv *Inventory) Slot(index int) Slot {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if index < 0 || index >= SlotCount {
		return Slot{}
	}
	return inv.slots[index]
}

// ReadSlots calls fn with a copy of all slots under the read lock.
func (inv *Inventory) ReadSlots(fn func(slots [SlotCount]Slot)) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	fn(inv.slots)
}
