package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixelclock/internal/config"
	"github.com/vovakirdan/pixelclock/internal/platform/tui"
	"github.com/vovakirdan/pixelclock/internal/rtc"
	"github.com/vovakirdan/pixelclock/internal/storage"
)

func runClock(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The panel renders two terminal columns per LED plus a border.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := cfg.Matrix.Width*2+4, cfg.Matrix.Height+4
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is smaller than the %dx%d the panel needs\n",
				w, h, needW, needH)
		}
	}

	logger := log.New(io.Discard)
	if flagDebug {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "pixelclock",
		})
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Store:  store,
		Clock:  rtc.NewSystem(store),
		Logger: logger,
		Seed:   flagSeed,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", runErr)
		os.Exit(1)
	}
}
