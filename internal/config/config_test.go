package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigNormalizes(t *testing.T) {
	cfg := DefaultConfig()
	warnings := cfg.Normalize()
	if len(warnings) != 0 {
		t.Errorf("default config produced warnings: %v", warnings)
	}
}

func TestNormalizeClampsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Display.TargetFPS = 9999
	cfg.Gameplay.CarStep = -1
	cfg.Gameplay.DefaultProfile = "nightmare"
	cfg.PowerUps.SpawnChance = 1.5
	cfg.Log.Level = "verbose"

	warnings := cfg.Normalize()
	if len(warnings) != 5 {
		t.Errorf("expected 5 warnings, got %d: %v", len(warnings), warnings)
	}

	def := DefaultConfig()
	if cfg.Display.TargetFPS != def.Display.TargetFPS {
		t.Errorf("target_fps not clamped: %d", cfg.Display.TargetFPS)
	}
	if cfg.Gameplay.CarStep != def.Gameplay.CarStep {
		t.Errorf("car_step not clamped: %v", cfg.Gameplay.CarStep)
	}
	if cfg.Gameplay.DefaultProfile != def.Gameplay.DefaultProfile {
		t.Errorf("default_difficulty not clamped: %q", cfg.Gameplay.DefaultProfile)
	}
	if cfg.PowerUps.SpawnChance != def.PowerUps.SpawnChance {
		t.Errorf("spawn_chance not clamped: %v", cfg.PowerUps.SpawnChance)
	}
	if cfg.Log.Level != def.Log.Level {
		t.Errorf("log level not clamped: %q", cfg.Log.Level)
	}
}

func TestNormalizeFillsEmptyMilestones(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gameplay.Milestones = nil
	cfg.Normalize()
	if len(cfg.Gameplay.Milestones) == 0 {
		t.Error("milestones not restored from defaults")
	}
}

func TestProfiles(t *testing.T) {
	ps := Profiles()
	if len(ps) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(ps))
	}
	if ps[0].Label != "easy" || ps[1].Label != "normal" || ps[2].Label != "hard" {
		t.Errorf("unexpected profile order: %s, %s, %s", ps[0].Label, ps[1].Label, ps[2].Label)
	}

	// Difficulty increases monotonically across the menu order.
	for i := 1; i < len(ps); i++ {
		if ps[i].ObstacleSpeed <= ps[i-1].ObstacleSpeed {
			t.Errorf("%s speed %v not above %s speed %v",
				ps[i].Label, ps[i].ObstacleSpeed, ps[i-1].Label, ps[i-1].ObstacleSpeed)
		}
		if ps[i].SpeedIncrement <= ps[i-1].SpeedIncrement {
			t.Errorf("%s increment %v not above %s increment %v",
				ps[i].Label, ps[i].SpeedIncrement, ps[i-1].Label, ps[i-1].SpeedIncrement)
		}
	}
	for _, p := range ps {
		if p.SpawnIntervalMin <= 0 || p.SpawnIntervalMax < p.SpawnIntervalMin {
			t.Errorf("%s has invalid spawn interval [%d,%d]", p.Label, p.SpawnIntervalMin, p.SpawnIntervalMax)
		}
		if p.Description == "" {
			t.Errorf("%s has no description", p.Label)
		}
	}

	// Mutating the returned slice must not touch the built-ins.
	ps[1].ObstacleSpeed = 99
	if again, _ := ProfileByLabel("normal"); again.ObstacleSpeed == 99 {
		t.Error("Profiles returned a reference to the built-in slice")
	}
}

func TestProfileByLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
		ok    bool
	}{
		{"easy", "easy", true},
		{"Normal", "normal", true},
		{"  HARD  ", "hard", true},
		{"ultra", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ProfileByLabel(tt.label)
		if ok != tt.ok {
			t.Errorf("ProfileByLabel(%q) ok = %v, want %v", tt.label, ok, tt.ok)
			continue
		}
		if ok && got.Label != tt.want {
			t.Errorf("ProfileByLabel(%q) = %s, want %s", tt.label, got.Label, tt.want)
		}
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.yaml")
	data := "gameplay:\n  max_obstacles: 5\npowerups:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gameplay.MaxObstacles != 5 {
		t.Errorf("max_obstacles = %d, want 5", cfg.Gameplay.MaxObstacles)
	}
	if cfg.PowerUps.Enabled {
		t.Error("powerups.enabled should be overridden to false")
	}
	// Keys absent from the file keep their defaults.
	def := DefaultConfig()
	if cfg.Display.LaneWidth != def.Display.LaneWidth {
		t.Errorf("lane_width = %v, want default %v", cfg.Display.LaneWidth, def.Display.LaneWidth)
	}
	if cfg.Gameplay.CarStep != def.Gameplay.CarStep {
		t.Errorf("car_step = %v, want default %v", cfg.Gameplay.CarStep, def.Gameplay.CarStep)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.yaml")
	if err := os.WriteFile(path, []byte("display: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed explicit config")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and DefaultConfig are maintained in parallel; drift
	// between them would make the fallback tiers behave differently.
	t.Setenv("HOME", t.TempDir()) // keep a real ~/.f1game/racer.yaml out of the test
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := DefaultConfig()
	if cfg.Display != def.Display {
		t.Errorf("display drift: %+v vs %+v", cfg.Display, def.Display)
	}
	if cfg.PowerUps != def.PowerUps {
		t.Errorf("powerups drift: %+v vs %+v", cfg.PowerUps, def.PowerUps)
	}
	if cfg.Audio != def.Audio || cfg.Log != def.Log {
		t.Errorf("audio/log drift: %+v %+v vs %+v %+v", cfg.Audio, cfg.Log, def.Audio, def.Log)
	}
}
