package racer

import "strings"

// GameStateType identifies which screen the game is on.
type GameStateType string

const (
	StateIntro      GameStateType = "intro"
	StateDifficulty GameStateType = "difficulty_select"
	StatePlaying    GameStateType = "playing"
	StatePaused     GameStateType = "paused"
	StateCrashed    GameStateType = "crashed"
	StateQuit       GameStateType = "quit"
)

// Snapshot captures the observable simulation state after a tick. Two games
// reset with the same seed and stepped with the same inputs must produce
// identical snapshots; tests rely on this.
type Snapshot struct {
	State         GameStateType
	Tick          int
	Countdown     int
	Score         int
	HighScore     int
	Difficulty    string
	BaseSpeed     float64
	CarX          float64
	Dodges        int
	Obstacles     int
	PowerUps      int
	ActiveEffects string // Active effect names joined by comma, activation order
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:     g.state,
		HighScore: g.highScore,
	}
	s := g.session
	if s == nil {
		return snap
	}
	snap.Tick = s.tick
	snap.Countdown = s.countdown
	snap.Score = s.score
	snap.Difficulty = s.profile.Label
	snap.BaseSpeed = s.baseSpeed
	snap.CarX = s.car.X
	snap.Dodges = s.dodges
	snap.Obstacles = len(s.obstacles)
	snap.PowerUps = len(s.powerUps)
	if active := s.effects.Active(); len(active) > 0 {
		names := make([]string, len(active))
		for i, e := range active {
			names[i] = e.Kind.String()
		}
		snap.ActiveEffects = strings.Join(names, ",")
	}
	return snap
}
