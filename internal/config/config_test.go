package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\nyaml: %+v\ncode: %+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
actor:
  jump_force: -9
timing:
  tick_interval: 20ms
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Actor.JumpForce != -9 {
		t.Errorf("JumpForce = %v, expected -9", cfg.Actor.JumpForce)
	}
	if cfg.Timing.TickInterval != 20*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 20ms", cfg.Timing.TickInterval)
	}
	// Untouched fields keep defaults
	if cfg.Arena.Height != 600 {
		t.Errorf("Arena.Height = %v, expected default 600", cfg.Arena.Height)
	}
	if cfg.MaxLevel() != 10 {
		t.Errorf("MaxLevel() = %d, expected default table of 10", cfg.MaxLevel())
	}
}

func TestParseEmptyDocumentUsesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse(empty) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Error("empty document should yield the defaults")
	}
}

func TestParseReplacesLevelTable(t *testing.T) {
	data := []byte(`
levels:
  - { name: "Only", gap: 200, speed: 2, spawn_interval: 1500ms, gravity: 0.4 }
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.MaxLevel() != 1 {
		t.Fatalf("MaxLevel() = %d, expected 1", cfg.MaxLevel())
	}
	if cfg.Levels[0].SpawnInterval != 1500*time.Millisecond {
		t.Errorf("SpawnInterval = %v, expected 1.5s", cfg.Levels[0].SpawnInterval)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("actor:\n  jump_forse: -9\n"))
	if err == nil {
		t.Fatal("Parse() should reject unknown keys")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FlappyConfig)
		wantErr string
	}{
		{"zero height", func(c *FlappyConfig) { c.Arena.Height = 0 }, "arena.height"},
		{"positive jump", func(c *FlappyConfig) { c.Actor.JumpForce = 4 }, "actor.jump_force"},
		{"huge margin", func(c *FlappyConfig) { c.Actor.CollisionMargin = 20 }, "actor.collision_margin"},
		{"no levels", func(c *FlappyConfig) { c.Levels = nil }, "at least one profile"},
		{"gap exceeds room", func(c *FlappyConfig) { c.Levels[3].Gap = 400 }, "levels[4].gap"},
		{"zero spawn interval", func(c *FlappyConfig) { c.Levels[0].SpawnInterval = 0 }, "levels[1].spawn_interval"},
		{"zero tick", func(c *FlappyConfig) { c.Timing.TickInterval = 0 }, "timing.tick_interval"},
		{"zero points per level", func(c *FlappyConfig) { c.Scoring.PointsPerLevel = 0 }, "scoring.points_per_level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  points_per_level: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Scoring.PointsPerLevel != 3 {
		t.Errorf("PointsPerLevel = %d, expected 3", cfg.Scoring.PointsPerLevel)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	if _, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFlappy() should fail for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  height: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(path); err == nil {
		t.Error("LoadFlappy() should fail for an invalid custom file")
	}
}

func TestLevelForScore(t *testing.T) {
	cfg := DefaultFlappyConfig()

	tests := []struct {
		score, level int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{44, 9},
		{45, 10},
		{49, 10},
		{50, 10},
		{1000, 10},
	}

	for _, tc := range tests {
		if got := cfg.LevelForScore(tc.score); got != tc.level {
			t.Errorf("LevelForScore(%d) = %d, expected %d", tc.score, got, tc.level)
		}
	}
}

func TestProfile(t *testing.T) {
	cfg := DefaultFlappyConfig()

	if p := cfg.Profile(1); p.Name != "Iniciante" || p.Gap != 250 {
		t.Errorf("Profile(1) = %+v, expected Iniciante/250", p)
	}
	if p := cfg.Profile(2); p.Name != "Fácil" || p.Speed != 2 {
		t.Errorf("Profile(2) = %+v, expected Fácil/2", p)
	}
	if p := cfg.Profile(10); p.Name != "INSANO!" || p.SpawnInterval != 600*time.Millisecond {
		t.Errorf("Profile(10) = %+v, expected INSANO!/600ms", p)
	}

	// Clamped at both ends
	if cfg.Profile(0).Name != "Iniciante" {
		t.Error("Profile(0) should clamp to level 1")
	}
	if cfg.Profile(42).Name != "INSANO!" {
		t.Error("Profile(42) should clamp to the last level")
	}
}

func TestProfilesGetHarder(t *testing.T) {
	cfg := DefaultFlappyConfig()
	for i := 1; i < len(cfg.Levels); i++ {
		prev, cur := cfg.Levels[i-1], cfg.Levels[i]
		if cur.Gap >= prev.Gap || cur.Speed <= prev.Speed || cur.SpawnInterval >= prev.SpawnInterval || cur.Gravity <= prev.Gravity {
			t.Errorf("level %d should be strictly harder than level %d", i+1, i)
		}
	}
}
