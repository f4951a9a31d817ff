package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the engine configuration.
type Config struct {
	Port          int    `yaml:"port"`           // observer endpoint port
	Seed          int64  `yaml:"seed"`           // world generation seed
	Generator     string `yaml:"generator"`      // "terrain" or "flat"
	NoiseBackend  string `yaml:"noise_backend"`  // "simplex" or "opensimplex"
	Radius        int    `yaml:"radius"`         // populate radius in chunks
	MaterialsPath string `yaml:"materials_path"` // empty = built-in registry
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Port:         8420,
		Generator:    "terrain",
		NoiseBackend: "simplex",
		Radius:       4,
	}
}

// Load reads a YAML config file. A missing file is not an error; the
// returned config is then nil. Fields the document omits keep their
// defaults, so a partial file never zeroes the rest.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := *Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge applies file-loaded values into cfg, but only for fields that were
// NOT explicitly set via CLI flags. explicitFlags holds the flag names
// provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if fromFile == nil {
		return
	}
	if !explicitFlags["port"] {
		cfg.Port = fromFile.Port
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.Generator = fromFile.Generator
	}
	if !explicitFlags["noise"] {
		cfg.NoiseBackend = fromFile.NoiseBackend
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["materials"] {
		cfg.MaterialsPath = fromFile.MaterialsPath
	}
}
