// Package audio synthesizes the game's sounds and plays them through the
// system speaker. When no device is available a silent player keeps the
// same timing.
package audio

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birdshot/internal/assets"
	"github.com/vovakirdan/birdshot/internal/config"
)

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// Player plays sounds from the asset catalog.
type Player interface {
	// Play starts a sound and returns immediately.
	Play(id assets.SoundID)
	// PlayFor plays a sound and blocks for d, cutting the sound off if it is longer.
	PlayFor(id assets.SoundID, d time.Duration) error
	// Close releases the output device.
	Close()
}

// required lists the sounds the game plays; a catalog without them is rejected.
var required = []assets.SoundID{assets.SoundGameOver, assets.SoundHit}

// New returns a speaker-backed player, or a silent one when audio is disabled
// or the device cannot be opened. Missing sounds are an error.
func New(cfg config.AudioConfig, cat *assets.Catalog, logger *log.Logger) (Player, error) {
	for _, id := range required {
		if _, err := cat.Sound(id); err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
	}

	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return Silent{}, nil
	}

	sp, err := NewSpeaker(cfg, cat)
	if err != nil {
		// The game runs without sound
		logger.Warn("audio unavailable, continuing silently", "err", err)
		return Silent{}, nil
	}
	logger.Debug("audio ready", "sample_rate", cfg.SampleRate)
	return sp, nil
}
