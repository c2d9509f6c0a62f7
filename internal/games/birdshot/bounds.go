package birdshot

import "github.com/vovakirdan/birdshot/internal/core"

// Arena is the logical play field. The origin is the top-left corner.
type Arena struct {
	W, H int
}

// CheckBound reports whether r lies inside the arena on each axis.
// An edge exactly on the arena border still counts as inside.
func CheckBound(r core.Rect, a Arena) (insideX, insideY bool) {
	insideX = r.X >= 0 && r.Right() <= a.W
	insideY = r.Y >= 0 && r.Bottom() <= a.H
	return insideX, insideY
}

// Contains reports whether the point lies in [0, W] x [0, H].
func (a Arena) Contains(x, y int) bool {
	return x >= 0 && x <= a.W && y >= 0 && y <= a.H
}
