package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/birdshot.yaml
var defaultYAML []byte

// DefaultConfig returns the default game configuration.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  1600,
			Height: 900,
		},
		Hazards: HazardConfig{
			Count:     5,
			MinRadius: 10,
			MaxRadius: 50,
			Speeds:    []int{-5, 0, 5},
		},
		Avatar: AvatarConfig{
			StartX:         900,
			StartY:         400,
			Step:           5,
			Width:          100,
			Height:         100,
			Pose:           3,
			HitPose:        6,
			GameOverPose:   8,
			HitFlashFrames: 12,
		},
		Beam: BeamConfig{
			Width:       80,
			Height:      24,
			SpawnOffset: 1.0,
		},
		Effect: EffectConfig{
			Life:        50,
			FramePeriod: 10,
		},
		Timing: TimingConfig{
			FPS:           50,
			GameOverPause: time.Second,
			EndSound:      3 * time.Second,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     -1.0,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for writing a starter config.
func DefaultYAML() []byte {
	return defaultYAML
}
