package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefault verifies the built-in settings
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.TickMillis != 16 {
		t.Errorf("Expected 16ms tick, got %d", cfg.TickMillis)
	}
	if cfg.Speed != 1.0 {
		t.Errorf("Expected speed 1.0, got %v", cfg.Speed)
	}
	if !cfg.ShowOrbits {
		t.Error("Orbits should default to visible")
	}
	if cfg.StarCount != 600 {
		t.Errorf("Expected 600 stars, got %d", cfg.StarCount)
	}
	if !cfg.Audio {
		t.Error("Audio should default to enabled")
	}
}

// TestLoadEmptyPath verifies no path means pure defaults
func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadMissingFile verifies a missing file is not an error
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults for missing file, got %+v", cfg)
	}
}

// TestLoadOverrides verifies file values layer over the defaults
func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.toml")
	content := `
tick_millis = 33
speed = 2.5
show_orbits = false
star_count = 1200
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickMillis != 33 || cfg.Speed != 2.5 || cfg.ShowOrbits || cfg.StarCount != 1200 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	// Unspecified keys keep their defaults
	if !cfg.Audio {
		t.Error("Audio default lost during partial load")
	}
}

// TestLoadMalformed verifies a broken file errors out
func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("tick_millis = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected a parse error for malformed TOML")
	}
}

// TestSanitize verifies nonsense values are clamped back to usable ones
func TestSanitize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.toml")
	content := `
tick_millis = -5
speed = 0.0
star_count = -100
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickMillis != 16 {
		t.Errorf("Negative tick not clamped: %d", cfg.TickMillis)
	}
	if cfg.Speed != 1.0 {
		t.Errorf("Zero speed not clamped: %v", cfg.Speed)
	}
	if cfg.StarCount != 0 {
		t.Errorf("Negative star count not clamped: %d", cfg.StarCount)
	}
}
