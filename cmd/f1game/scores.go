package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/merrillholt/F1Game/internal/platform/tui"
	"github.com/merrillholt/F1Game/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the scoreboard",
	Long: `Open the interactive scoreboard with per-difficulty tabs.

When stdout is not a terminal (or with --plain) a plain text table is
printed instead.

Examples:
  f1game scores
  f1game scores --plain
  f1game scores --plain --limit 25
  f1game scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Rows to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded score history")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if clearErr := store.ClearScores(gameID); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Println("Score history cleared.")
		return
	}

	// Interactive scoreboard needs a terminal
	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			width = w
			height = h
		}

		if _, sbErr := tui.RunScoreboard(store, gameID, gameTitle(), width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	printPlainScores(store)
}

// printPlainScores writes a top-N table to stdout.
func printPlainScores(store *storage.Store) {
	scores, err := store.TopScores(gameID, "", flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", gameTitle())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'f1game play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "----------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, entry.Score, entry.Difficulty, dateStr)
	}

	// Show personal best
	fmt.Println()
	if best, bestErr := store.HighScoreRecord(gameID); bestErr == nil && best != nil {
		fmt.Printf("Best: %d (%s)\n", best.Score, best.Difficulty)
	}
}
