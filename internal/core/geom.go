// Package core holds the terminal-independent building blocks shared by the
// game and the TUI: integer geometry, colored cell buffers, sprites and input
// actions. Nothing here imports Bubble Tea.
package core

// Rect is an axis-aligned box in whatever units the caller works in.
// The right and bottom edges are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt returns a w x h box whose center is (cx, cy).
func RectAt(cx, cy, w, h int) Rect {
	return Rect{W: w, H: h}.WithCenter(cx, cy)
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether the two boxes share any area.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// Center rounds toward the top-left for even sizes.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) WithCenter(cx, cy int) Rect {
	r.X, r.Y = cx-r.W/2, cy-r.H/2
	return r
}

func (r Rect) Move(dx, dy int) Rect {
	r.X, r.Y = r.X+dx, r.Y+dy
	return r
}

// Clamp limits v to [lo, hi]. lo wins when the range is empty.
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func Min(a, b int) int { return min(a, b) }
func Max(a, b int) int { return max(a, b) }
