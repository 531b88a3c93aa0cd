package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSkybirdConfig()) {
		t.Errorf("embedded YAML and DefaultSkybirdConfig differ:\n%+v\n%+v", cfg, DefaultSkybirdConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("bird:\n  gravity: 0.1\nscore:\n  initial: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Bird.Gravity != 0.1 {
		t.Errorf("Gravity = %v, expected 0.1", cfg.Bird.Gravity)
	}
	if cfg.Score.Initial != 50 {
		t.Errorf("Score.Initial = %d, expected 50", cfg.Score.Initial)
	}
	// Untouched keys keep their defaults
	if cfg.Bird.JumpImpulse != -1.6 {
		t.Errorf("JumpImpulse = %v, expected default -1.6", cfg.Bird.JumpImpulse)
	}
	if cfg.Spawn.Interval.Every != 5*time.Second {
		t.Errorf("Spawn.Interval.Every = %v, expected 5s", cfg.Spawn.Interval.Every)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for negative world width")
	}

	invalid := []struct {
		name string
		yaml string
	}{
		{"negative flock speed", "events:\n  flock:\n    speed: -3\n"},
		{"negative lightning speed", "events:\n  lightning:\n    speed: -4\n"},
		{"negative flock lanes", "events:\n  flock:\n    lanes: -1\n"},
		{"gap lane past the last lane", "events:\n  flock:\n    lanes: 3\n    gap_lane: 3\n"},
		{"negative gap lane", "events:\n  flock:\n    gap_lane: -1\n"},
		{"negative lightning count", "events:\n  lightning:\n    count: -1\n"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Errorf("expected validation error for %s", tc.name)
			}
		})
	}

	if err := os.WriteFile(path, []byte("world: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		growth float64
	}{
		{"", 1.1},
		{DifficultyEasy, 1.05},
		{DifficultyNormal, 1.1},
		{DifficultyHard, 1.2},
		{DifficultyFixed, 1.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSkybirdConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Growth != tc.growth {
				t.Errorf("Growth = %v, expected %v", cfg.Difficulty.Growth, tc.growth)
			}
		})
	}

	if ParsePreset("HARD") != "" {
		t.Error("ParsePreset should reject unknown values")
	}
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
}
