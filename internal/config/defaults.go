package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultConfig returns the built-in racer configuration. It mirrors
// defaults/racer.yaml and serves as the last-resort fallback when even the
// embedded YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			LaneWidth:  400,
			LaneHeight: 600,
			TargetFPS:  60,
		},
		Gameplay: GameplayConfig{
			CarStep:         10,
			MaxObstacles:    3,
			SpawnMargin:     8,
			CollisionInsetX: 5,
			CollisionInsetY: 15,
			DefaultProfile:  "normal",
			Milestones:      []int{10, 25, 50, 100, 200},
			CountdownTicks:  45, // 0.75s per step at 60 fps
		},
		PowerUps: PowerUpsConfig{
			Enabled:       true,
			SpawnChance:   0.01,
			Size:          30,
			FallSpeed:     3,
			ShieldSeconds: 3.0,
			SlowMoSeconds: 5.0,
			SlowMoFactor:  0.5,
			BoostSeconds:  2.0,
			BoostFactor:   1.5,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Path:  "", // Event log disabled unless a path is set
			Level: "info",
		},
	}
}
