package material

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/voxel-engine/internal/engine/voxel"
)

func TestDefaultRegistryLookups(t *testing.T) {
	r := Default()

	m, ok := r.ByID(1)
	if !ok || m.Name != "stone" {
		t.Errorf("ByID(1) = (%v,%v), want stone", m, ok)
	}
	if m, ok := r.ByName("grass"); !ok || m.ID != 3 {
		t.Errorf("ByName(grass) = (%v,%v)", m, ok)
	}
	if _, ok := r.ByID(200); ok {
		t.Error("unregistered id should not resolve")
	}
}

func TestGetUnknownMaterial(t *testing.T) {
	r := Default()
	if _, err := r.Get(250); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("Get(250) = %v, want ErrUnknownMaterial", err)
	}
	if _, err := r.Get(voxel.Air); err != nil {
		t.Errorf("air should be registered: %v", err)
	}
}

func TestSolid(t *testing.T) {
	r := Default()
	if r.Solid(voxel.Air) {
		t.Error("air is not solid")
	}
	if !r.Solid(1) {
		t.Error("stone is solid")
	}
	if r.Solid(250) {
		t.Error("unknown ids are not solid")
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]Material{
		{ID: 1, Name: "stone", Color: "#000000", Solid: true},
		{ID: 1, Name: "granite", Color: "#000000", Solid: true},
	})
	if err == nil {
		t.Error("duplicate id should be rejected")
	}

	_, err = NewRegistry([]Material{
		{ID: 1, Name: "stone", Color: "#000000", Solid: true},
		{ID: 2, Name: "stone", Color: "#000000", Solid: true},
	})
	if err == nil {
		t.Error("duplicate name should be rejected")
	}
}

func TestNewRegistryRejectsSolidAir(t *testing.T) {
	_, err := NewRegistry([]Material{{ID: 0, Name: "air", Color: "#000000", Solid: true}})
	if err == nil {
		t.Error("solid air should be rejected")
	}
}

func TestParseValidDocument(t *testing.T) {
	raw := []byte(`[
		{"id": 0, "name": "air", "color": "#000000", "solid": false, "transparent": true},
		{"id": 1, "name": "stone", "color": "#7d7d7d", "solid": true}
	]`)
	r, err := Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.All()) != 2 {
		t.Errorf("got %d materials, want 2", len(r.All()))
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"missing color":  `[{"id": 1, "name": "stone", "solid": true}]`,
		"bad color":      `[{"id": 1, "name": "stone", "color": "red", "solid": true}]`,
		"id out of byte": `[{"id": 300, "name": "stone", "color": "#7d7d7d", "solid": true}]`,
		"empty list":     `[]`,
		"extra field":    `[{"id": 1, "name": "stone", "color": "#7d7d7d", "solid": true, "blast": 3}]`,
		"not an array":   `{"id": 1}`,
		"not json":       `stone`,
	}
	for name, raw := range cases {
		if _, err := Parse([]byte(raw)); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}
