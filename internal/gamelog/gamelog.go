// Package gamelog records structured game events to a file. All methods are
// safe on a nil *Logger and simply do nothing, so the game core never guards
// its call sites; a session without an event log is the normal case.
package gamelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Logger wraps a charmbracelet logger writing game events to one sink.
type Logger struct {
	l      *log.Logger
	closer io.Closer
}

// Open creates a logger appending to the file at path, creating parent
// directories as needed. Level is one of debug, info, warn, error; empty
// means info.
func Open(path, level string) (*Logger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	gl := New(f, level)
	gl.closer = f
	return gl, nil
}

// New creates a logger writing to w. Used by Open and by tests.
func New(w io.Writer, level string) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer",
	})
	if level != "" {
		if lvl, err := log.ParseLevel(level); err == nil {
			l.SetLevel(lvl)
		}
	}
	return &Logger{l: l}
}

// Close releases the underlying file, if any.
func (g *Logger) Close() error {
	if g == nil || g.closer == nil {
		return nil
	}
	return g.closer.Close()
}

// StateChange records a screen transition.
func (g *Logger) StateChange(from, to string) {
	if g == nil {
		return
	}
	g.l.Info("state change", "from", from, "to", to)
}

// SessionStart records the start of a round.
func (g *Logger) SessionStart(profile string, seed int64) {
	if g == nil {
		return
	}
	g.l.Info("session start", "difficulty", profile, "seed", seed)
}

// Spawn records a new obstacle entering the lane.
func (g *Logger) Spawn(kind string, x float64) {
	if g == nil {
		return
	}
	g.l.Debug("obstacle spawned", "type", kind, "x", x)
}

// PowerUpSpawn records a new power-up entering the lane.
func (g *Logger) PowerUpSpawn(kind string, x float64) {
	if g == nil {
		return
	}
	g.l.Debug("powerup spawned", "type", kind, "x", x)
}

// Dodge records an obstacle cleared off the bottom edge.
func (g *Logger) Dodge(kind string, score int, baseSpeed float64) {
	if g == nil {
		return
	}
	g.l.Debug("obstacle dodged", "type", kind, "score", score, "speed", baseSpeed)
}

// Collision records the crash that ended a round.
func (g *Logger) Collision(kind string, score int) {
	if g == nil {
		return
	}
	g.l.Info("collision", "type", kind, "final_score", score)
}

// ShieldAbsorb records a collision soaked by an active shield.
func (g *Logger) ShieldAbsorb(kind string) {
	if g == nil {
		return
	}
	g.l.Info("shield absorbed hit", "type", kind)
}

// Pickup records a collected power-up and its duration.
func (g *Logger) Pickup(kind string, seconds float64) {
	if g == nil {
		return
	}
	g.l.Info("powerup collected", "type", kind, "seconds", seconds)
}

// EffectExpired records a power-up effect running out.
func (g *Logger) EffectExpired(kind string) {
	if g == nil {
		return
	}
	g.l.Debug("powerup expired", "type", kind)
}

// Milestone records the score crossing a celebration threshold.
func (g *Logger) Milestone(score int) {
	if g == nil {
		return
	}
	g.l.Info("score milestone", "score", score)
}

// HighScore records a new personal best.
func (g *Logger) HighScore(score int) {
	if g == nil {
		return
	}
	g.l.Info("new high score", "score", score)
}

// Warn records a non-fatal problem.
func (g *Logger) Warn(msg string, keyvals ...any) {
	if g == nil {
		return
	}
	g.l.Warn(msg, keyvals...)
}

// Error records a recoverable internal fault.
func (g *Logger) Error(msg string, keyvals ...any) {
	if g == nil {
		return
	}
	g.l.Error(msg, keyvals...)
}
