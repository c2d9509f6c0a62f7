package birdshot

import (
	"math"

	"github.com/vovakirdan/birdshot/internal/config"
	"github.com/vovakirdan/birdshot/internal/core"
)

// Beam is a projectile flying in a straight line.
type Beam struct {
	rect   core.Rect
	vx, vy int
	angle  float64 // Degrees, counter-clockwise from right
	sprite core.Sprite
}

// NewBeam fires a beam along the bird's facing. It spawns offset from the
// bird's center by the bird's size times the facing's unit components, so
// diagonal beams leave from a corner.
func NewBeam(b *Bird, cfg config.BeamConfig, art core.Sprite) *Beam {
	vx, vy := b.Velocity()
	ux, uy := b.Facing().Unit()
	angle := math.Atan2(float64(-vy), float64(vx)) * 180 / math.Pi

	// Bounding box of the rotated beam
	rad := angle * math.Pi / 180
	cos, sin := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	w := float64(cfg.Width)*cos + float64(cfg.Height)*sin
	h := float64(cfg.Width)*sin + float64(cfg.Height)*cos

	cx, cy := b.Rect().Center()
	cx += int(math.Round(float64(b.Rect().W*ux) * cfg.SpawnOffset))
	cy += int(math.Round(float64(b.Rect().H*uy) * cfg.SpawnOffset))

	return &Beam{
		rect:   core.RectAt(cx, cy, int(math.Round(w)), int(math.Round(h))),
		vx:     vx,
		vy:     vy,
		angle:  angle,
		sprite: art.Rotate(angle),
	}
}

// Update moves the beam by its velocity.
func (b *Beam) Update() {
	b.rect = b.rect.Move(b.vx, b.vy)
}

// Exited reports whether the beam's center has left the arena.
func (b *Beam) Exited(arena Arena) bool {
	return !arena.Contains(b.rect.Center())
}

// Rect returns the beam's hitbox.
func (b *Beam) Rect() core.Rect { return b.rect }

// Velocity returns the beam's velocity.
func (b *Beam) Velocity() (int, int) { return b.vx, b.vy }

// Angle returns the sprite orientation in degrees.
func (b *Beam) Angle() float64 { return b.angle }

// Sprite returns the rotated beam sprite.
func (b *Beam) Sprite() core.Sprite { return b.sprite }
