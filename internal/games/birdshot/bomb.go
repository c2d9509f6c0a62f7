package birdshot

import (
	"math/rand"

	"github.com/vovakirdan/birdshot/internal/config"
	"github.com/vovakirdan/birdshot/internal/core"
)

// bombColors is the palette a bomb's color is drawn from.
var bombColors = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
}

// Bomb is a bouncing circular hazard.
type Bomb struct {
	rect   core.Rect
	vx, vy int
	radius int
	color  core.Color
}

// NewBomb places a bomb of random size, color and velocity with its center
// anywhere in the arena. Both velocity components may be zero.
func NewBomb(rng *rand.Rand, cfg config.HazardConfig, arena Arena) *Bomb {
	r := cfg.MinRadius + rng.Intn(cfg.MaxRadius-cfg.MinRadius+1)
	color := bombColors[rng.Intn(len(bombColors))]
	cx := rng.Intn(arena.W + 1)
	cy := rng.Intn(arena.H + 1)
	vx := cfg.Speeds[rng.Intn(len(cfg.Speeds))]
	vy := cfg.Speeds[rng.Intn(len(cfg.Speeds))]

	return &Bomb{
		rect:   core.RectAt(cx, cy, 2*r, 2*r),
		vx:     vx,
		vy:     vy,
		radius: r,
		color:  color,
	}
}

// Update reflects the velocity on any axis where the bomb is out of the
// arena, then moves by it. Position is never clamped.
func (b *Bomb) Update(arena Arena) {
	insideX, insideY := CheckBound(b.rect, arena)
	if !insideX {
		b.vx = -b.vx
	}
	if !insideY {
		b.vy = -b.vy
	}
	b.rect = b.rect.Move(b.vx, b.vy)
}

// Rect returns the bomb's hitbox.
func (b *Bomb) Rect() core.Rect { return b.rect }

// Velocity returns the current velocity.
func (b *Bomb) Velocity() (int, int) { return b.vx, b.vy }

// Radius returns the bomb radius.
func (b *Bomb) Radius() int { return b.radius }

// Color returns the bomb color.
func (b *Bomb) Color() core.Color { return b.color }
