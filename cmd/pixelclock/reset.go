package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelclock/internal/storage"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe stored scores and settings",
	Long: `Delete every stored run, best score and setting, returning the clock
to factory defaults. Asks for confirmation unless --yes is given.

Examples:
  pixelclock reset
  pixelclock reset --yes`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagResetYes {
		fmt.Print("This deletes all scores and settings. Continue? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			fmt.Println("Aborted.")
			return
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing database: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("All scores and settings cleared.")
}
