package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Screen dimensions drive rendering only; the simulation runs in a fixed
// virtual coordinate space so gameplay is identical at any terminal size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for the platform after each tick.
type GameState struct {
	Score      int    // Current round score
	HighScore  int    // Best score seen this process (>= persisted value)
	Difficulty string // Label of the active difficulty profile, "" before selection
	GameOver   bool   // True while the crash screen is showing
	Paused     bool   // True while paused
	Quit       bool   // True once the player chose to leave; platform exits
}

// StepResult is returned by Game.Step() after each simulation tick.
// Cues are one-shot sound events emitted during this tick, in order;
// the platform forwards them to the audio engine and then discards them.
type StepResult struct {
	State GameState
	Cues  []Cue
}
