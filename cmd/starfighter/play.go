package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-starfighter/internal/asset"
	"github.com/vovakirdan/tui-starfighter/internal/core"
	"github.com/vovakirdan/tui-starfighter/internal/games/starfighter"
	"github.com/vovakirdan/tui-starfighter/internal/platform/tui"
)

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The game owns the terminal, so logs only go somewhere when a file is set.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	lib, err := asset.NewLibrary(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		os.Exit(1)
	}
	game, err := starfighter.New(cfg, lib, starfighter.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}

	runErr := tui.Run(game, runtime, tui.Options{
		ReleaseAfter: cfg.Input.ReleaseAfter,
		Logger:       logger,
	})
	if runErr != nil {
		closeLog() //nolint:errcheck // os.Exit skips the deferred close
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if s := game.Session(); s.Finished() {
		fmt.Printf("Killed %d, missed %d, survived %s\n",
			s.EnemiesKilled, s.EnemiesMissed, starfighter.FormatDuration(s.Duration()))
	}
}
