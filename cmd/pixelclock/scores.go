package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelclock/internal/games"
	"github.com/vovakirdan/pixelclock/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show stored scores",
	Long: `Display the best score and recent runs for a game, or the best score
of every game when no game is given.

Examples:
  pixelclock scores
  pixelclock scores snake`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		fmt.Println("Best scores")
		fmt.Println()
		for _, info := range games.List() {
			best, bestErr := store.BestScore(info.ID)
			if bestErr != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", info.ID, bestErr)
				continue
			}
			fmt.Printf("  %-8s  %d\n", info.Title, best)
		}
		return
	}

	gameID := args[0]
	if !games.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	best, err := store.BestScore(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best score: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - best %d\n", games.Title(gameID), best)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %s\n", "Score", "Date")
	fmt.Printf("  %-10s  %s\n", "-----", "----")
	for _, entry := range runs {
		fmt.Printf("  %-10d  %s\n", entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
