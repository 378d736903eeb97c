// Package config loads pascalc's optional project file, pascalc.yaml: unit
// search paths, the target C++ standard, and the output directory. Nothing
// in the compiler core depends on this package; only cmd/pascalc reads it,
// same as the teacher keeps its own CLI-only concerns out of the core.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the shape of pascalc.yaml. Every field has a zero-value default
// that Load applies when the file is absent or a field is omitted.
type Config struct {
	SearchPaths []string `yaml:"search_paths"`
	CppStandard string   `yaml:"cpp_standard"`
	OutputDir   string   `yaml:"output_dir"`
}

// Default returns the configuration used when no pascalc.yaml is found.
func Default() *Config {
	return &Config{
		SearchPaths: []string{"."},
		CppStandard: "c++17",
		OutputDir:   ".",
	}
}

// Load reads path and merges it over Default(); a missing file is not an
// error, it just yields the defaults. A present-but-malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if len(cfg.SearchPaths) == 0 {
		cfg.SearchPaths = []string{"."}
	}
	if cfg.CppStandard == "" {
		cfg.CppStandard = "c++17"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return cfg, nil
}
