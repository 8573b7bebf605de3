package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Particles.Mass1 != 5.0 || cfg.Particles.Velocity1 != 5.0 {
		t.Errorf("unexpected particle 1 defaults: %+v", cfg.Particles)
	}
	if cfg.Particles.Mass2 != 5.0 || cfg.Particles.Velocity2 != -3.0 {
		t.Errorf("unexpected particle 2 defaults: %+v", cfg.Particles)
	}
	if cfg.Animation.Samples != 30 {
		t.Errorf("expected 30 samples, got %d", cfg.Animation.Samples)
	}
	if cfg.FrameDelay() != 100*time.Millisecond {
		t.Errorf("expected 100ms frame delay, got %v", cfg.FrameDelay())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"mass1 below minimum", func(c *Config) { c.Particles.Mass1 = 0.05 }},
		{"mass2 zero", func(c *Config) { c.Particles.Mass2 = 0 }},
		{"one sample", func(c *Config) { c.Animation.Samples = 1 }},
		{"zero duration", func(c *Config) { c.Animation.Duration = 0 }},
		{"zero frame delay", func(c *Config) { c.Animation.FrameDelayMs = 0 }},
		{"empty log path", func(c *Config) { c.LogPath = "" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestValidateParticlesAcceptsMinimum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Particles.Mass1 = MinMass
	cfg.Particles.Velocity2 = -1000
	p1, p2 := cfg.ParticlePair()
	if err := ValidateParticles(p1, p2); err != nil {
		t.Errorf("minimum mass should be accepted: %v", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collide.yaml")

	cfg := DefaultConfig()
	cfg.Particles.Mass2 = 12.5
	cfg.Animation.Samples = 60
	cfg.Theme = "ocean"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Particles.Mass2 != 12.5 {
		t.Errorf("expected mass2 12.5, got %f", loaded.Particles.Mass2)
	}
	if loaded.Animation.Samples != 60 {
		t.Errorf("expected 60 samples, got %d", loaded.Animation.Samples)
	}
	if loaded.Theme != "ocean" {
		t.Errorf("expected theme ocean, got %s", loaded.Theme)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  velocity1: 7\n  mass1: 5\n  mass2: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Particles.Velocity1 != 7 {
		t.Errorf("expected velocity1 7, got %f", cfg.Particles.Velocity1)
	}
	if cfg.Animation.FrameDelayMs != DefaultFrameDelayMs {
		t.Errorf("expected default frame delay, got %d", cfg.Animation.FrameDelayMs)
	}
	if cfg.LogPath != DefaultLogPath {
		t.Errorf("expected default log path, got %s", cfg.LogPath)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  mass1: 0\n  mass2: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("default")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Velocity2 != -3 {
		t.Errorf("expected velocity2 -3, got %f", p.Velocity2)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestPresetsValidate(t *testing.T) {
	for name := range Presets {
		cfg := DefaultConfig()
		if !cfg.ApplyPreset(name) {
			t.Fatalf("apply %s failed", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
	if DefaultConfig().ApplyPreset("nonexistent") {
		t.Error("expected false for unknown preset")
	}
}
