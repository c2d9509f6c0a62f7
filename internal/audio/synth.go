package audio

import (
	"fmt"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/birdshot/internal/assets"
)

// Synth builds a finite streamer that plays the notes of a sound in order.
// A zero frequency note is silence. Volume is a power of two applied to the
// samples; 0 leaves them unchanged.
func Synth(s assets.Sound, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(s.Notes))
	for i, n := range s.Notes {
		samples := sr.N(n.Duration)
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("sound %q note %d: %w", s.ID, i, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}
