package material

import (
	"errors"
	"fmt"

	"github.com/OCharnyshevich/voxel-engine/internal/engine/voxel"
)

// ErrUnknownMaterial is returned for ids without a registry entry. The world
// store never checks ids; unknown materials surface here, at lookup time.
var ErrUnknownMaterial = errors.New("unknown material id")

// Material is the display and physics metadata for one block id.
type Material struct {
	ID          voxel.BlockID `json:"id"`
	Name        string        `json:"name"`
	Color       string        `json:"color"` // #rrggbb
	Solid       bool          `json:"solid"`
	Transparent bool          `json:"transparent"`
}

// Registry maps block ids to materials. It is immutable after construction.
type Registry struct {
	byID   map[voxel.BlockID]Material
	byName map[string]Material
	all    []Material
}

// NewRegistry builds a registry from a material list. Duplicate ids or
// names are rejected; id 0 must be air and non-solid if present.
func NewRegistry(materials []Material) (*Registry, error) {
	r := &Registry{
		byID:   make(map[voxel.BlockID]Material, len(materials)),
		byName: make(map[string]Material, len(materials)),
	}
	for _, m := range materials {
		if _, dup := r.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate material id %d", m.ID)
		}
		if _, dup := r.byName[m.Name]; dup {
			return nil, fmt.Errorf("duplicate material name %q", m.Name)
		}
		if m.ID == voxel.Air && m.Solid {
			return nil, errors.New("air must not be solid")
		}
		r.byID[m.ID] = m
		r.byName[m.Name] = m
		r.all = append(r.all, m)
	}
	return r, nil
}

// ByID returns the material for id.
func (r *Registry) ByID(id voxel.BlockID) (Material, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// ByName returns the material with the given name.
func (r *Registry) ByName(name string) (Material, bool) {
	m, ok := r.byName[name]
	return m, ok
}

// Get is ByID with an error for callers that propagate unknown ids.
func (r *Registry) Get(id voxel.BlockID) (Material, error) {
	m, ok := r.byID[id]
	if !ok {
		return Material{}, fmt.Errorf("material %d: %w", id, ErrUnknownMaterial)
	}
	return m, nil
}

// Solid reports whether id is a registered solid material. Air and unknown
// ids are not solid.
func (r *Registry) Solid(id voxel.BlockID) bool {
	m, ok := r.byID[id]
	return ok && m.Solid
}

// All returns the materials in registration order.
func (r *Registry) All() []Material {
	out := make([]Material, len(r.all))
	copy(out, r.all)
	return out
}

// Default returns the built-in registry used when no materials file is
// configured.
func Default() *Registry {
	r, err := NewRegistry([]Material{
		{ID: voxel.Air, Name: "air", Color: "#000000", Solid: false, Transparent: true},
		{ID: 1, Name: "stone", Color: "#7d7d7d", Solid: true},
		{ID: 2, Name: "dirt", Color: "#8b5a2b", Solid: true},
		{ID: 3, Name: "grass", Color: "#4caf50", Solid: true},
		{ID: 4, Name: "sand", Color: "#e0d8a6", Solid: true},
		{ID: 5, Name: "wood", Color: "#6b4f2a", Solid: true},
		{ID: 6, Name: "leaves", Color: "#2e7d32", Solid: true, Transparent: true},
	})
	if err != nil {
		panic(err) // built-in table is static
	}
	return r
}
