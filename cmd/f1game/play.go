package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/merrillholt/F1Game/internal/audio"
	"github.com/merrillholt/F1Game/internal/config"
	"github.com/merrillholt/F1Game/internal/core"
	"github.com/merrillholt/F1Game/internal/gamelog"
	"github.com/merrillholt/F1Game/internal/games/racer"
	"github.com/merrillholt/F1Game/internal/platform/tui"
	"github.com/merrillholt/F1Game/internal/registry"
	"github.com/merrillholt/F1Game/internal/storage"
)

var (
	flagDifficulty string
	flagMute       bool
	flagNoPowerUps bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a race.

Controls:
  Left/A, Right/D - Steer
  P               - Pause
  Esc             - Pause / back out of a screen
  Enter           - Confirm
  R               - Race again (after a crash)
  1/2/3           - Pick a difficulty directly
  M               - Toggle sound
  Q               - Quit
  Ctrl+C          - Force quit

Difficulty options:
  easy   - Slow traffic, gentle speed ramp
  normal - The classic experience
  hard   - Fast traffic, steep speed ramp

Examples:
  f1game play
  f1game play --difficulty hard
  f1game play --mute --no-powerups
  f1game play --config ./my-racer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// The root command starts the game too, so both commands take the
	// session flags.
	addPlayFlags(playCmd)
	addPlayFlags(rootCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	cmd.Flags().BoolVar(&flagNoPowerUps, "no-powerups", false, "Disable power-up spawns")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Validate the difficulty preset before opening anything
	if flagDifficulty != "" {
		if _, ok := config.ProfileByLabel(flagDifficulty); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			fmt.Fprintln(os.Stderr, "Run 'f1game difficulties' to see the profiles.")
			os.Exit(1)
		}
	}

	// Get terminal size for the first frame; resizes stream in live
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Wire the game's package-level presets before creation
	racer.SetConfigPath(flagConfig)
	racer.SetDifficulty(flagDifficulty)
	racer.SetPowerUpsOff(flagNoPowerUps)

	// Platform concerns (event log, sound) honor the config file; flags win
	fileCfg, cfgErr := config.Load(flagConfig)
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", cfgErr)
		fileCfg = config.DefaultConfig()
	}
	for _, warn := range fileCfg.Normalize() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warn)
	}

	// Gameplay event log
	var logger *gamelog.Logger
	logPath := fileCfg.Log.Path
	if flagLog != "" {
		logPath = flagLog
	}
	if logPath != "" {
		l, logErr := gamelog.Open(logPath, fileCfg.Log.Level)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open event log: %v\n", logErr)
		} else {
			logger = l
			racer.SetEventLog(logger)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		if high, highErr := store.HighScore(gameID); highErr == nil {
			racer.SetHighScore(high)
		}
	}

	// Audio: a failed speaker init degrades to silence, never to an error.
	// Disabling sound in the config skips speaker init entirely.
	engine := audio.NewEngine()
	if fileCfg.Audio.Enabled {
		if initErr := engine.Initialize(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", initErr)
		}
	}
	engine.SetMuted(flagMute)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	runErr := tui.Run(game, store, engine, cfg)

	// Release resources before potential exit
	engine.Cleanup()
	if store != nil {
		store.Close()
	}
	if logger != nil {
		logger.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
