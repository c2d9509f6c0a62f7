package birdshot

// Direction is one of the eight compass headings the bird can face.
type Direction int

const (
	Right Direction = iota
	UpRight
	Up
	UpLeft
	Left
	DownLeft
	Down
	DownRight

	numDirections = 8
)

// unit holds the sign of each axis for a direction. Screen y grows downward.
var unit = [numDirections][2]int{
	Right:     {+1, 0},
	UpRight:   {+1, -1},
	Up:        {0, -1},
	UpLeft:    {-1, -1},
	Left:      {-1, 0},
	DownLeft:  {-1, +1},
	Down:      {0, +1},
	DownRight: {+1, +1},
}

var directionNames = [numDirections]string{
	"right", "up-right", "up", "up-left", "left", "down-left", "down", "down-right",
}

// arrows mark the heading on the bird sprite.
var arrows = [numDirections]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// String returns the direction name.
func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return "unknown"
	}
	return directionNames[d]
}

// Unit returns the axis signs of the direction.
func (d Direction) Unit() (int, int) {
	u := unit[d]
	return u[0], u[1]
}

// Vector returns the displacement of one step in this direction.
func (d Direction) Vector(step int) (int, int) {
	ux, uy := d.Unit()
	return ux * step, uy * step
}

// Leftward reports whether the direction has a leftward component.
func (d Direction) Leftward() bool {
	return unit[d][0] < 0
}

// DirectionOf maps an exact displacement to a direction. Only the eight
// vectors of magnitude step on each axis match; anything else reports false.
func DirectionOf(dx, dy, step int) (Direction, bool) {
	for d := Direction(0); d < numDirections; d++ {
		vx, vy := d.Vector(step)
		if vx == dx && vy == dy {
			return d, true
		}
	}
	return 0, false
}
