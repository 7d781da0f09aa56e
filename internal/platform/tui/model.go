// Package tui renders games in the terminal using Bubble Tea.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/merrillholt/F1Game/internal/audio"
	"github.com/merrillholt/F1Game/internal/core"
	"github.com/merrillholt/F1Game/internal/registry"
	"github.com/merrillholt/F1Game/internal/storage"
)

// Model is the Bubble Tea model that drives a game session. It owns the
// fixed-tick loop, translates key presses into input frames, forwards sound
// cues to the audio engine, and persists scores.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	audio      *audio.Engine
	keymap     *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the round's score has been recorded yet
	savedHigh  int  // Last high score written to the store
}

// NewModel creates a model for the given game. The store and audio engine
// may be nil; scores are then not persisted and cues are dropped.
func NewModel(game registry.Game, store *storage.Store, engine *audio.Engine, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		audio:      engine,
		keymap:     NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			m.savedHigh = high
		}
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Platform keys (force quit, mute,
// screenshot) are consumed here; everything else is recorded in the input
// frame for the next tick. Regular quit (q) goes through the game so it can
// run its quit transition.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "m":
		if m.audio != nil {
			m.audio.ToggleMute()
		}
		return m, nil
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	m.keymap.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events. The simulation runs in virtual
// coordinates, so resizing only changes the render surface and never resets
// the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width <= 0 || msg.Height <= 0 {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	// Forward sound cues raised this tick
	if m.audio != nil {
		for _, cue := range result.Cues {
			m.audio.Play(cue)
		}
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Persist a new high score the moment it is reached, so a force quit
	// mid-round cannot lose it.
	if m.store != nil && m.gameState.HighScore > m.savedHigh {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SetHighScore(m.game.ID(), m.gameState.HighScore, m.gameState.Difficulty)
		m.savedHigh = m.gameState.HighScore
	}

	// Record the crashed round in history (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Difficulty)
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".f1game", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	if m.audio != nil && m.audio.Muted() {
		m.screen.DrawTextColored(1, m.screen.Height()-1, "muted", core.ColorGray)
	}

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, engine *audio.Engine, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, engine, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
