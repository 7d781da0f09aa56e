// f1game is a terminal arcade racing game: dodge traffic, grab power-ups,
// chase the high score.
//
// Usage:
//
//	f1game                - Play (same as 'f1game play')
//	f1game play           - Play the game
//	f1game scores         - Show the scoreboard
//	f1game difficulties   - List the difficulty profiles
//	f1game serve          - Host the game over SSH
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.f1game/scores.db)
//	--config <path>  - Path to a custom game config YAML
//	--log <path>     - Append the gameplay event log to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/merrillholt/F1Game/internal/registry"

	// Import the game to register it
	_ "github.com/merrillholt/F1Game/internal/games/racer"
)

// gameID is the only game this binary ships.
const gameID = "racer"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "f1game",
	Short: "F1 Racer - A retro arcade racing game for your terminal",
	Long: `F1 Racer is a terminal arcade game: steer through falling traffic,
collect power-ups, and survive as long as you can. Running f1game with no
subcommand starts the game directly.

Available commands:
  play          - Play the game (default)
  scores        - View the scoreboard
  difficulties  - List the difficulty profiles
  serve         - Host the game over SSH

Examples:
  f1game
  f1game play --difficulty hard
  f1game scores
  f1game serve --port 2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.f1game/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Append gameplay event log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(serveCmd)
}

// gameTitle returns the display name of the bundled game.
func gameTitle() string {
	game, err := registry.Create(gameID)
	if err != nil {
		return gameID
	}
	return game.Title()
}
