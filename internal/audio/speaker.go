package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/birdshot/internal/assets"
	"github.com/vovakirdan/birdshot/internal/config"
)

// Speaker plays synthesized sounds on the default output device.
type Speaker struct {
	sr     beep.SampleRate
	volume float64
	cat    *assets.Catalog
}

// NewSpeaker initializes the output device with a 100ms buffer.
func NewSpeaker(cfg config.AudioConfig, cat *assets.Catalog) (*Speaker, error) {
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: failed to init speaker: %w", err)
	}
	return &Speaker{sr: sr, volume: cfg.Volume, cat: cat}, nil
}

func (s *Speaker) stream(id assets.SoundID) (beep.Streamer, error) {
	snd, err := s.cat.Sound(id)
	if err != nil {
		return nil, err
	}
	return Synth(snd, s.sr, s.volume)
}

// Play starts a sound in the background. Unknown sounds are ignored.
func (s *Speaker) Play(id assets.SoundID) {
	st, err := s.stream(id)
	if err != nil {
		return
	}
	speaker.Play(st)
}

// PlayFor plays a sound padded or cut to exactly d and waits for it to finish.
func (s *Speaker) PlayFor(id assets.SoundID, d time.Duration) error {
	st, err := s.stream(id)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(
		beep.Take(s.sr.N(d), beep.Seq(st, beep.Silence(-1))),
		beep.Callback(func() { close(done) }),
	))

	// Guard against a stalled device
	select {
	case <-done:
	case <-time.After(d + time.Second):
		speaker.Clear()
	}
	return nil
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
