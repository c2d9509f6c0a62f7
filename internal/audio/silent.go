package audio

import (
	"time"

	"github.com/vovakirdan/birdshot/internal/assets"
)

// Silent is a Player without an output device.
type Silent struct{}

// Play does nothing.
func (Silent) Play(assets.SoundID) {}

// PlayFor sleeps for d so callers keep the same pacing as with sound.
func (Silent) PlayFor(_ assets.SoundID, d time.Duration) error {
	time.Sleep(d)
	return nil
}

// Close does nothing.
func (Silent) Close() {}
