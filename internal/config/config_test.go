package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultHasSaneFallbacks(t *testing.T) {
	cfg := Default()
	if len(cfg.SearchPaths) != 1 || cfg.SearchPaths[0] != "." {
		t.Errorf("Default().SearchPaths = %v, want [\".\"]", cfg.SearchPaths)
	}
	if cfg.CppStandard != "c++17" {
		t.Errorf("Default().CppStandard = %q, want c++17", cfg.CppStandard)
	}
	if cfg.OutputDir != "." {
		t.Errorf("Default().OutputDir = %q, want .", cfg.OutputDir)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for a missing file", err)
	}
	if cfg.CppStandard != "c++17" {
		t.Errorf("CppStandard = %q, want c++17 default", cfg.CppStandard)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pascalc.yaml")
	yaml := "search_paths:\n  - ./units\n  - ./vendor\ncpp_standard: c++20\noutput_dir: build\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.SearchPaths) != 2 || cfg.SearchPaths[0] != "./units" || cfg.SearchPaths[1] != "./vendor" {
		t.Errorf("SearchPaths = %v, want [./units ./vendor]", cfg.SearchPaths)
	}
	if cfg.CppStandard != "c++20" {
		t.Errorf("CppStandard = %q, want c++20", cfg.CppStandard)
	}
	if cfg.OutputDir != "build" {
		t.Errorf("OutputDir = %q, want build", cfg.OutputDir)
	}
}

func TestLoadFillsPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pascalc.yaml")
	if err := os.WriteFile(path, []byte("cpp_standard: c++23\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CppStandard != "c++23" {
		t.Errorf("CppStandard = %q, want c++23", cfg.CppStandard)
	}
	if len(cfg.SearchPaths) != 1 || cfg.SearchPaths[0] != "." {
		t.Errorf("SearchPaths = %v, want default [.] when omitted from the file", cfg.SearchPaths)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want default . when omitted from the file", cfg.OutputDir)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pascalc.yaml")
	if err := os.WriteFile(path, []byte("search_paths: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want an error for malformed YAML")
	}
}
