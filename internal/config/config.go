// Package config provides YAML-based configuration loading and the fixed
// difficulty profiles for the racer.
package config

import "fmt"

// Config contains all tunable parameters for the racer. The game reads it
// once at session setup and never writes it back.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`
}

// DisplayConfig defines the virtual playfield the simulation runs in.
// Terminal size only affects how the playfield is scaled for drawing.
type DisplayConfig struct {
	LaneWidth  float64 `yaml:"lane_width"`  // Playfield width in virtual units
	LaneHeight float64 `yaml:"lane_height"` // Playfield height in virtual units
	TargetFPS  int     `yaml:"target_fps"`  // Simulation ticks per second
}

// GameplayConfig defines car and round parameters.
type GameplayConfig struct {
	CarStep         float64 `yaml:"car_step"`          // Horizontal units per tick while steering
	MaxObstacles    int     `yaml:"max_obstacles"`     // Concurrent obstacle cap
	SpawnMargin     float64 `yaml:"spawn_margin"`      // Clearance from lane edges at spawn
	CollisionInsetX float64 `yaml:"collision_inset_x"` // Horizontal forgiveness margin
	CollisionInsetY float64 `yaml:"collision_inset_y"` // Vertical forgiveness margin
	DefaultProfile  string  `yaml:"default_difficulty"`
	Milestones      []int   `yaml:"score_milestones"`
	CountdownTicks  int     `yaml:"countdown_step_ticks"` // Ticks per 3-2-1-GO step
}

// PowerUpsConfig defines power-up spawning and effect parameters.
type PowerUpsConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SpawnChance   float64 `yaml:"spawn_chance"` // Independent probability per tick
	Size          float64 `yaml:"size"`         // Square edge in virtual units
	FallSpeed     float64 `yaml:"fall_speed"`   // Units per tick, unaffected by slow motion
	ShieldSeconds float64 `yaml:"shield_seconds"`
	SlowMoSeconds float64 `yaml:"slow_motion_seconds"`
	SlowMoFactor  float64 `yaml:"slow_motion_factor"` // Obstacle speed multiplier while active
	BoostSeconds  float64 `yaml:"speed_boost_seconds"`
	BoostFactor   float64 `yaml:"speed_boost_factor"` // Car step multiplier while active
}

// AudioConfig toggles the synthesized sound engine.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig controls the diagnostic event log. An empty path disables it.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// Normalize clamps out-of-range values back to their defaults and returns a
// warning per correction. Bad configuration degrades, it never aborts.
func (c *Config) Normalize() []string {
	var warnings []string
	def := DefaultConfig()

	fix := func(field string, bad any) {
		warnings = append(warnings, fmt.Sprintf("config: %s=%v out of range, using default", field, bad))
	}

	if c.Display.LaneWidth < 100 || c.Display.LaneWidth > 4000 {
		fix("display.lane_width", c.Display.LaneWidth)
		c.Display.LaneWidth = def.Display.LaneWidth
	}
	if c.Display.LaneHeight < 100 || c.Display.LaneHeight > 4000 {
		fix("display.lane_height", c.Display.LaneHeight)
		c.Display.LaneHeight = def.Display.LaneHeight
	}
	if c.Display.TargetFPS < 30 || c.Display.TargetFPS > 144 {
		fix("display.target_fps", c.Display.TargetFPS)
		c.Display.TargetFPS = def.Display.TargetFPS
	}

	if c.Gameplay.CarStep <= 0 {
		fix("gameplay.car_step", c.Gameplay.CarStep)
		c.Gameplay.CarStep = def.Gameplay.CarStep
	}
	if c.Gameplay.MaxObstacles < 1 || c.Gameplay.MaxObstacles > 16 {
		fix("gameplay.max_obstacles", c.Gameplay.MaxObstacles)
		c.Gameplay.MaxObstacles = def.Gameplay.MaxObstacles
	}
	if c.Gameplay.SpawnMargin < 0 {
		fix("gameplay.spawn_margin", c.Gameplay.SpawnMargin)
		c.Gameplay.SpawnMargin = def.Gameplay.SpawnMargin
	}
	if c.Gameplay.CollisionInsetX < 0 {
		fix("gameplay.collision_inset_x", c.Gameplay.CollisionInsetX)
		c.Gameplay.CollisionInsetX = def.Gameplay.CollisionInsetX
	}
	if c.Gameplay.CollisionInsetY < 0 {
		fix("gameplay.collision_inset_y", c.Gameplay.CollisionInsetY)
		c.Gameplay.CollisionInsetY = def.Gameplay.CollisionInsetY
	}
	if _, ok := ProfileByLabel(c.Gameplay.DefaultProfile); !ok {
		fix("gameplay.default_difficulty", c.Gameplay.DefaultProfile)
		c.Gameplay.DefaultProfile = def.Gameplay.DefaultProfile
	}
	if len(c.Gameplay.Milestones) == 0 {
		c.Gameplay.Milestones = append([]int(nil), def.Gameplay.Milestones...)
	}
	if c.Gameplay.CountdownTicks < 1 || c.Gameplay.CountdownTicks > 600 {
		fix("gameplay.countdown_step_ticks", c.Gameplay.CountdownTicks)
		c.Gameplay.CountdownTicks = def.Gameplay.CountdownTicks
	}

	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 1 {
		fix("powerups.spawn_chance", c.PowerUps.SpawnChance)
		c.PowerUps.SpawnChance = def.PowerUps.SpawnChance
	}
	if c.PowerUps.Size <= 0 {
		fix("powerups.size", c.PowerUps.Size)
		c.PowerUps.Size = def.PowerUps.Size
	}
	if c.PowerUps.FallSpeed <= 0 {
		fix("powerups.fall_speed", c.PowerUps.FallSpeed)
		c.PowerUps.FallSpeed = def.PowerUps.FallSpeed
	}
	if c.PowerUps.ShieldSeconds <= 0 {
		fix("powerups.shield_seconds", c.PowerUps.ShieldSeconds)
		c.PowerUps.ShieldSeconds = def.PowerUps.ShieldSeconds
	}
	if c.PowerUps.SlowMoSeconds <= 0 {
		fix("powerups.slow_motion_seconds", c.PowerUps.SlowMoSeconds)
		c.PowerUps.SlowMoSeconds = def.PowerUps.SlowMoSeconds
	}
	if c.PowerUps.SlowMoFactor <= 0 || c.PowerUps.SlowMoFactor > 1 {
		fix("powerups.slow_motion_factor", c.PowerUps.SlowMoFactor)
		c.PowerUps.SlowMoFactor = def.PowerUps.SlowMoFactor
	}
	if c.PowerUps.BoostSeconds <= 0 {
		fix("powerups.speed_boost_seconds", c.PowerUps.BoostSeconds)
		c.PowerUps.BoostSeconds = def.PowerUps.BoostSeconds
	}
	if c.PowerUps.BoostFactor < 1 {
		fix("powerups.speed_boost_factor", c.PowerUps.BoostFactor)
		c.PowerUps.BoostFactor = def.PowerUps.BoostFactor
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		fix("log.level", c.Log.Level)
		c.Log.Level = def.Log.Level
	}

	return warnings
}
