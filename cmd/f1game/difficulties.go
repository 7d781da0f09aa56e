package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merrillholt/F1Game/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List the difficulty profiles",
	Long:  `Shows the selectable difficulty profiles and their parameters.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func runDifficulties(cmd *cobra.Command, args []string) {
	fmt.Println("Difficulty profiles:")
	fmt.Println()

	for _, p := range config.Profiles() {
		fmt.Printf("  %s (%s)\n", p.Name, p.Label)
		fmt.Printf("    %s\n", p.Description)
		fmt.Printf("    obstacle speed %.1f, +%.1f per dodge, spawn gap %d-%d ticks\n",
			p.ObstacleSpeed, p.SpeedIncrement, p.SpawnIntervalMin, p.SpawnIntervalMax)
		fmt.Println()
	}

	fmt.Println("Pick one in the game menu, or run 'f1game play --difficulty <label>'.")
}
