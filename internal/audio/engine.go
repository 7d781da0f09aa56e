// Package audio synthesizes every game sound at runtime with gopxl/beep.
// There are no asset files: each cue is generated from simple oscillators.
// A failed speaker init leaves the engine as a silent no-op; audio problems
// never take the game down.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/merrillholt/F1Game/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Engine owns the speaker and a persistent mixer. One-shot cues are added
// to the mixer and drain on their own; the engine-hum music loop lives in a
// Ctrl so pause/resume/stop can act on it.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicPaused bool
	muted       bool
	initialized bool
}

// NewEngine creates an engine. Call Initialize before playing anything.
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call twice.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: speaker init failed: %w", err)
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself has no close, so clearing
// the mixer is the best shutdown beep offers.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	e.stopMusicLocked()
	e.mixer.Clear()
	e.initialized = false
}

// SetMuted silences one-shots and pauses the music loop without losing its
// logical state; unmuting resumes where the music left off.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
	e.applyMusicStateLocked()
}

// ToggleMute flips the mute flag and returns the new state.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted
	e.applyMusicStateLocked()
	return e.muted
}

// Muted reports whether the engine is muted.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Play renders a single cue. Music cues change the loop state; every other
// cue mixes in a short one-shot. Unknown cues are ignored.
func (e *Engine) Play(cue core.Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	switch cue {
	case core.CueMusicStart:
		e.startMusicLocked()
	case core.CueMusicPause:
		e.musicPaused = true
		e.applyMusicStateLocked()
	case core.CueMusicResume:
		e.musicPaused = false
		e.applyMusicStateLocked()
	case core.CueMusicStop:
		e.stopMusicLocked()
	default:
		if e.muted {
			return
		}
		if s := oneShot(cue); s != nil {
			e.mixer.Add(s)
		}
	}
}

// startMusicLocked (re)starts the engine-hum loop from the beginning.
func (e *Engine) startMusicLocked() {
	e.stopMusicLocked()
	ctrl := &beep.Ctrl{Streamer: NewHumGenerator(sampleRate)}
	e.music = ctrl
	e.musicPaused = false
	e.applyMusicStateLocked()
	e.mixer.Add(ctrl)
}

// stopMusicLocked drops the music loop from the mixer. A Ctrl with a nil
// Streamer reads as drained, which is how beep removes it.
func (e *Engine) stopMusicLocked() {
	if e.music == nil {
		return
	}
	e.music.Paused = true
	e.music.Streamer = nil
	e.music = nil
	e.musicPaused = false
}

func (e *Engine) applyMusicStateLocked() {
	if e.music != nil {
		e.music.Paused = e.musicPaused || e.muted
	}
}

// oneShot builds the finite streamer for a cue, or nil for cues with no
// one-shot sound.
func oneShot(cue core.Cue) beep.Streamer {
	take := func(d time.Duration, s beep.Streamer) beep.Streamer {
		return beep.Take(sampleRate.N(d), s)
	}

	switch cue {
	case core.CueIntro:
		// Rising swoosh under the scrolling title art
		return take(time.Millisecond*500, NewSweepGenerator(sampleRate, 180, 720, time.Millisecond*500))
	case core.CueTitle:
		// A major chord as the title lands
		return take(time.Millisecond*600, NewChordGenerator(sampleRate, 220.00, 277.18, 329.63))
	case core.CueIgnition:
		// Engine rev-up from a low growl
		return take(time.Millisecond*700, NewSweepGenerator(sampleRate, 50, 210, time.Millisecond*700))
	case core.CueCountdown:
		return take(time.Millisecond*150, NewToneGenerator(sampleRate, 880))
	case core.CueGo:
		return take(time.Millisecond*400, NewToneGenerator(sampleRate, 1318.5))
	case core.CueCrash:
		return take(time.Millisecond*600, NewCrashGenerator(sampleRate))
	case core.CuePickup:
		// Two quick notes up
		return take(time.Millisecond*220, NewArpeggioGenerator(sampleRate, time.Millisecond*110, 659.25, 987.77))
	case core.CueShieldHit:
		// Dull low thud instead of a crash
		return take(time.Millisecond*180, NewToneGenerator(sampleRate, 95))
	case core.CueMilestone:
		// C-E-G run for a score milestone
		return take(time.Millisecond*450, NewArpeggioGenerator(sampleRate, time.Millisecond*150, 523.25, 659.25, 783.99))
	default:
		return nil
	}
}
