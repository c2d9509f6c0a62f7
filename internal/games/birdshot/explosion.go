package birdshot

import "github.com/vovakirdan/birdshot/internal/core"

// Explosion is the short animation left where a bomb was destroyed.
type Explosion struct {
	x, y   int
	life   int
	period int
	frames [2]core.Sprite
	frame  int
}

// NewExplosion starts an explosion at (x, y). The second frame is the first
// one turned upside down and mirrored.
func NewExplosion(x, y, life, period int, art core.Sprite) *Explosion {
	return &Explosion{
		x:      x,
		y:      y,
		life:   life,
		period: period,
		frames: [2]core.Sprite{art, art.Mirror().Flip()},
	}
}

// Tick spends one frame of life and picks the frame to show.
func (e *Explosion) Tick() {
	e.life--
	if e.life > 0 {
		e.frame = (e.life / e.period) % 2
	}
}

// Alive reports whether the explosion still has life left.
func (e *Explosion) Alive() bool { return e.life > 0 }

// Life returns the remaining frames.
func (e *Explosion) Life() int { return e.life }

// Frame returns the index of the sprite currently shown.
func (e *Explosion) Frame() int { return e.frame }

// Center returns the explosion position.
func (e *Explosion) Center() (int, int) { return e.x, e.y }

// Sprite returns the sprite currently shown.
func (e *Explosion) Sprite() core.Sprite { return e.frames[e.frame] }
