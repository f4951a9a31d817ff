package material

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed materials.schema.json
var schemaJSON string

// Load reads a materials definition file (JSON array), validates it against
// the embedded schema, and builds a Registry.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read materials: %w", err)
	}
	return Parse(raw)
}

// Parse validates and decodes a materials JSON document.
func Parse(raw []byte) (*Registry, error) {
	schema, err := jsonschema.CompileString("materials.schema.json", schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("compile materials schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse materials: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate materials: %w", err)
	}

	var materials []Material
	if err := json.Unmarshal(raw, &materials); err != nil {
		return nil, fmt.Errorf("decode materials: %w", err)
	}
	return NewRegistry(materials)
}
