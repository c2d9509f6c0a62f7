// Package config provides YAML-based game configuration loading and
// validation for birdshot.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Hazards HazardConfig  `yaml:"hazards"`
	Avatar  AvatarConfig  `yaml:"avatar"`
	Beam    BeamConfig    `yaml:"beam"`
	Effect  EffectConfig  `yaml:"effect"`
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
}

// ArenaConfig defines the logical play field. Rendering scales it to the terminal.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// HazardConfig defines how bombs are spawned at game start.
type HazardConfig struct {
	Count     int   `yaml:"count"`
	MinRadius int   `yaml:"min_radius"`
	MaxRadius int   `yaml:"max_radius"`
	Speeds    []int `yaml:"speeds"` // Candidate values for each velocity component
}

// AvatarConfig defines the player's bird.
type AvatarConfig struct {
	StartX         int `yaml:"start_x"`
	StartY         int `yaml:"start_y"`
	Step           int `yaml:"step"` // Displacement per held key per tick
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	Pose           int `yaml:"pose"`
	HitPose        int `yaml:"hit_pose"`
	GameOverPose   int `yaml:"game_over_pose"`
	HitFlashFrames int `yaml:"hit_flash_frames"`
}

// BeamConfig defines the projectile fired by the bird.
type BeamConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Multiple of the bird size along the facing
}

// EffectConfig defines the explosion left by a destroyed bomb.
type EffectConfig struct {
	Life        int `yaml:"life"`         // Ticks the explosion stays alive
	FramePeriod int `yaml:"frame_period"` // Ticks per animation frame
}

// TimingConfig defines the frame rate and the game-over coda.
type TimingConfig struct {
	FPS           int           `yaml:"fps"`
	GameOverPause time.Duration `yaml:"game_over_pause"`
	EndSound      time.Duration `yaml:"end_sound"`
}

// InputConfig defines how key presses become held keys.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a direction stays held after a key press
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Exponent of 2 applied to samples; 0 is unchanged
	SampleRate int     `yaml:"sample_rate"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena must be positive, got %dx%d", c.Arena.Width, c.Arena.Height)

	check(c.Hazards.Count >= 0, "hazards.count must not be negative, got %d", c.Hazards.Count)
	check(c.Hazards.MinRadius > 0, "hazards.min_radius must be positive, got %d", c.Hazards.MinRadius)
	check(c.Hazards.MaxRadius >= c.Hazards.MinRadius, "hazards.max_radius %d is below min_radius %d", c.Hazards.MaxRadius, c.Hazards.MinRadius)
	check(len(c.Hazards.Speeds) > 0, "hazards.speeds must not be empty")

	a := c.Avatar
	check(a.Step > 0, "avatar.step must be positive, got %d", a.Step)
	check(a.Width > 0 && a.Height > 0, "avatar size must be positive, got %dx%d", a.Width, a.Height)
	check(a.StartX-a.Width/2 >= 0 && a.StartX-a.Width/2+a.Width <= c.Arena.Width &&
		a.StartY-a.Height/2 >= 0 && a.StartY-a.Height/2+a.Height <= c.Arena.Height,
		"avatar start (%d, %d) does not fit inside the arena", a.StartX, a.StartY)
	check(a.HitFlashFrames >= 0, "avatar.hit_flash_frames must not be negative, got %d", a.HitFlashFrames)

	check(c.Beam.Width > 0 && c.Beam.Height > 0, "beam size must be positive, got %dx%d", c.Beam.Width, c.Beam.Height)
	check(c.Beam.SpawnOffset >= 0, "beam.spawn_offset must not be negative, got %v", c.Beam.SpawnOffset)

	check(c.Effect.Life > 0, "effect.life must be positive, got %d", c.Effect.Life)
	check(c.Effect.FramePeriod > 0, "effect.frame_period must be positive, got %d", c.Effect.FramePeriod)

	check(c.Timing.FPS > 0, "timing.fps must be positive, got %d", c.Timing.FPS)
	check(c.Timing.GameOverPause >= 0, "timing.game_over_pause must not be negative")
	check(c.Timing.EndSound >= 0, "timing.end_sound must not be negative")

	check(c.Input.HoldTicks > 0, "input.hold_ticks must be positive, got %d", c.Input.HoldTicks)

	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)

	return errors.Join(errs...)
}
