package birdshot

import "github.com/vovakirdan/birdshot/internal/core"

// Visual characters for rendering
const (
	BombChar     = '█'
	BombDotChar  = '●'
	GameOverText = "GAME OVER"
	ClearedText  = "ALL BOMBS DOWN"
)

// scoreX and scoreMargin place the score label at (100, height-50) in arena units.
const (
	scoreX      = 100
	scoreMargin = 50
)

// view maps arena coordinates onto screen cells.
type view struct {
	sx, sy float64
}

func newView(arena Arena, dst *core.Screen) view {
	return view{
		sx: float64(dst.Width()) / float64(arena.W),
		sy: float64(dst.Height()) / float64(arena.H),
	}
}

func (v view) point(x, y int) (int, int) {
	return int(float64(x) * v.sx), int(float64(y) * v.sy)
}

// Render draws the current frame: background, bombs, bird, beams,
// explosions, then the score label and any banner.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newView(g.arena, dst)

	g.drawBackground(dst)

	for _, b := range g.bombs {
		drawBomb(dst, v, b)
	}

	bx, by := v.point(g.bird.Rect().Center())
	dst.BlitCentered(g.bird.Sprite(), bx, by)

	for _, b := range g.beams {
		x, y := v.point(b.Rect().Center())
		dst.BlitCentered(b.Sprite(), x, y)
	}

	for _, e := range g.explosions {
		x, y := v.point(e.Center())
		dst.BlitCentered(e.Sprite(), x, y)
	}

	label := g.score.Label()
	lx, ly := v.point(scoreX, g.arena.H-scoreMargin)
	dst.DrawTextColor(core.Clamp(lx-len(label)/2, 0, dst.Width()-len(label)), ly, label, g.scoreTint)

	switch {
	case g.gameOver:
		drawBanner(dst, GameOverText, core.ColorBrightRed)
	case g.cleared:
		drawBanner(dst, ClearedText, core.ColorBrightGreen)
	}
}

// drawBanner writes a boxed message across the middle of the screen.
func drawBanner(dst *core.Screen, text string, c core.Color) {
	w := len([]rune(text)) + 4
	mid := dst.Height() / 2
	r := core.NewRect((dst.Width()-w)/2, mid-1, w, 3)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	dst.DrawTextCentered(mid, text, c)
}

// drawBackground tiles the backdrop over the whole screen.
func (g *Game) drawBackground(dst *core.Screen) {
	w, h := g.backdrop.Width(), g.backdrop.Height()
	if w == 0 || h == 0 {
		return
	}
	for y := 0; y < dst.Height(); y += h {
		for x := 0; x < dst.Width(); x += w {
			dst.Blit(g.backdrop, x, y)
		}
	}
}

// drawBomb fills the cells whose centers fall inside the bomb's circle.
// A bomb smaller than a cell is drawn as a single dot.
func drawBomb(dst *core.Screen, v view, b *Bomb) {
	cx, cy := b.Rect().Center()
	fx, fy := float64(cx)*v.sx, float64(cy)*v.sy
	rx, ry := float64(b.Radius())*v.sx, float64(b.Radius())*v.sy

	drawn := false
	if rx > 0 && ry > 0 {
		for y := int(fy - ry); y <= int(fy+ry); y++ {
			for x := int(fx - rx); x <= int(fx+rx); x++ {
				dx := (float64(x) + 0.5 - fx) / rx
				dy := (float64(y) + 0.5 - fy) / ry
				if dx*dx+dy*dy <= 1 {
					dst.SetCell(x, y, BombChar, b.Color())
					drawn = true
				}
			}
		}
	}
	if !drawn {
		dst.SetCell(int(fx), int(fy), BombDotChar, b.Color())
	}
}
