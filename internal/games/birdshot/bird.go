package birdshot

import (
	"fmt"

	"github.com/vovakirdan/birdshot/internal/assets"
	"github.com/vovakirdan/birdshot/internal/config"
	"github.com/vovakirdan/birdshot/internal/core"
)

// birdLook holds every sprite the bird can show.
type birdLook struct {
	facing [numDirections]core.Sprite
	hit    core.Sprite
	dead   core.Sprite
}

// loadBirdLook builds the direction sprites from the base pose. Leftward
// headings use the art as drawn, the rest use it mirrored, and each heading
// gets an arrow in the corner it points to.
func loadBirdLook(cfg config.AvatarConfig, cat *assets.Catalog) (birdLook, error) {
	var look birdLook

	base, err := cat.Avatar(cfg.Pose)
	if err != nil {
		return look, fmt.Errorf("bird pose: %w", err)
	}
	if look.hit, err = cat.Avatar(cfg.HitPose); err != nil {
		return look, fmt.Errorf("bird hit pose: %w", err)
	}
	if look.dead, err = cat.Avatar(cfg.GameOverPose); err != nil {
		return look, fmt.Errorf("bird game over pose: %w", err)
	}

	mirrored := base.Mirror()
	for d := Direction(0); d < numDirections; d++ {
		sp := mirrored
		if d.Leftward() {
			sp = base
		}
		ux, uy := d.Unit()
		x, y := sp.Width()-1, 0
		if ux < 0 {
			x = 0
		}
		if uy > 0 {
			y = sp.Height() - 1
		}
		look.facing[d] = sp.WithGlyph(x, y, arrows[d])
	}
	return look, nil
}

// Bird is the player's avatar.
type Bird struct {
	rect   core.Rect
	step   int
	facing Direction
	look   birdLook

	flashFrames int
	flash       int  // Frames left showing the hit pose
	dead        bool // Game-over pose is permanent
}

func newBird(cfg config.AvatarConfig, look birdLook) *Bird {
	return &Bird{
		rect:        core.RectAt(cfg.StartX, cfg.StartY, cfg.Width, cfg.Height),
		step:        cfg.Step,
		facing:      Right,
		look:        look,
		flashFrames: cfg.HitFlashFrames,
	}
}

// Update moves the bird by the sum of the held directions. A move that would
// leave the arena on either axis is undone entirely. A non-zero sum becomes
// the new facing even when the move was undone.
func (b *Bird) Update(in core.InputFrame, arena Arena) {
	if b.flash > 0 {
		b.flash--
	}

	var dx, dy int
	for _, a := range core.Directions {
		if !in.IsHeld(a) {
			continue
		}
		switch a {
		case core.ActionUp:
			dy -= b.step
		case core.ActionDown:
			dy += b.step
		case core.ActionLeft:
			dx -= b.step
		case core.ActionRight:
			dx += b.step
		}
	}

	moved := b.rect.Move(dx, dy)
	if insideX, insideY := CheckBound(moved, arena); insideX && insideY {
		b.rect = moved
	}

	if dx == 0 && dy == 0 {
		return
	}
	if d, ok := DirectionOf(dx, dy, b.step); ok {
		b.facing = d
	}
}

// Hit shows the hit pose for a few frames.
func (b *Bird) Hit() {
	b.flash = b.flashFrames
}

// Die switches to the game-over pose for good.
func (b *Bird) Die() {
	b.dead = true
}

// Rect returns the bird's hitbox.
func (b *Bird) Rect() core.Rect { return b.rect }

// Facing returns the current heading.
func (b *Bird) Facing() Direction { return b.facing }

// Velocity returns one step along the current heading.
func (b *Bird) Velocity() (int, int) { return b.facing.Vector(b.step) }

// Sprite returns what the bird looks like this frame.
func (b *Bird) Sprite() core.Sprite {
	switch {
	case b.dead:
		return b.look.dead
	case b.flash > 0:
		return b.look.hit
	default:
		return b.look.facing[b.facing]
	}
}
