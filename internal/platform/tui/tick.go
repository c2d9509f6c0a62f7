// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and the game-over coda.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birdshot/internal/assets"
	"github.com/vovakirdan/birdshot/internal/audio"
)

// TickMsg drives one Game.Step.
type TickMsg time.Time

// codaDoneMsg is sent when the game-over sound and pause are over.
type codaDoneMsg struct{}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// codaCmd plays the end sound for d, waits for pause, then reports back.
// It blocks its goroutine and cannot be cancelled.
func codaCmd(player audio.Player, logger *log.Logger, d, pause time.Duration) tea.Cmd {
	return func() tea.Msg {
		if err := player.PlayFor(assets.SoundGameOver, d); err != nil {
			logger.Warn("end sound failed", "err", err)
		}
		time.Sleep(pause)
		return codaDoneMsg{}
	}
}
