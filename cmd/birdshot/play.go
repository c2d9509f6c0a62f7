package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/birdshot/internal/assets"
	"github.com/vovakirdan/birdshot/internal/audio"
	"github.com/vovakirdan/birdshot/internal/config"
	"github.com/vovakirdan/birdshot/internal/core"
	"github.com/vovakirdan/birdshot/internal/games/birdshot"
	"github.com/vovakirdan/birdshot/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := assets.Open(flagAssets)
	if err != nil {
		return err
	}

	game, err := birdshot.New(cfg, cat)
	if err != nil {
		return err
	}

	player, err := audio.New(cfg.Audio, cat, logger)
	if err != nil {
		return err
	}
	defer player.Close()

	// Terminal size; the arena is scaled to it
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.FPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Player:    player,
		Logger:    logger,
		HoldTicks: cfg.Input.HoldTicks,
		EndSound:  cfg.Timing.EndSound,
		Pause:     cfg.Timing.GameOverPause,
	}

	if err := tui.Run(game, rc, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	fmt.Printf("Final score: %d\n", game.State().Score)
	return nil
}

// newLogger builds the run logger. Without a log file the output is
// discarded, since anything on stderr would corrupt the alt screen.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "birdshot",
		Level:           lvl,
	})
	return logger.With("run", uuid.NewString()), closeFn, nil
}
