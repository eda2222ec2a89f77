package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxParticles != DefaultMaxParticles {
		t.Errorf("expected %d particles, got %d", DefaultMaxParticles, cfg.MaxParticles)
	}
	if cfg.TimeScale != 1.0 {
		t.Errorf("expected time scale 1.0, got %f", cfg.TimeScale)
	}
	if cfg.FrameRate <= 0 {
		t.Error("frame rate should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("storm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.MaxParticles != 20000 {
		t.Errorf("expected 20000 particles, got %d", cfg.MaxParticles)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected at least one preset")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heliosim.yaml")

	want := &Config{MaxParticles: 123, Seed: 77, TimeScale: 2.5, FrameRate: 15}
	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("max_particles: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.MaxParticles != 42 {
		t.Errorf("expected 42 particles, got %d", cfg.MaxParticles)
	}
	if cfg.TimeScale != DefaultTimeScale {
		t.Errorf("unset fields should keep defaults, time scale %f", cfg.TimeScale)
	}
}
