package core

import "math"

// Sprite is a small block of glyphs drawn in a single color.
// Spaces are transparent when blitted onto a Screen.
type Sprite struct {
	Cells [][]rune
	Color Color
}

// NewSprite builds a sprite from text rows.
func NewSprite(rows []string, c Color) Sprite {
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = []rune(row)
	}
	return Sprite{Cells: cells, Color: c}
}

// Width returns the width of the widest row.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Cells {
		w = Max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s.Cells)
}

// Rows returns the sprite as text rows.
func (s Sprite) Rows() []string {
	rows := make([]string, len(s.Cells))
	for i, row := range s.Cells {
		rows[i] = string(row)
	}
	return rows
}

// At returns the glyph at (x, y), or space outside the sprite.
func (s Sprite) At(x, y int) rune {
	if y < 0 || y >= len(s.Cells) || x < 0 || x >= len(s.Cells[y]) {
		return ' '
	}
	return s.Cells[y][x]
}

// grid returns a padded copy of the cells so every row has the same width.
func (s Sprite) grid() [][]rune {
	w := s.Width()
	out := make([][]rune, len(s.Cells))
	for y := range s.Cells {
		out[y] = make([]rune, w)
		for x := 0; x < w; x++ {
			out[y][x] = s.At(x, y)
		}
	}
	return out
}

// Glyph swaps applied by the transforms so directional glyphs keep pointing the right way.
var (
	mirrorGlyphs = map[rune]rune{
		'<': '>', '>': '<', '(': ')', ')': '(', '[': ']', ']': '[', '{': '}', '}': '{',
		'/': '\\', '\\': '/', '╱': '╲', '╲': '╱', '◄': '►', '►': '◄',
		'▌': '▐', '▐': '▌', '◀': '▶', '▶': '◀', '┌': '┐', '┐': '┌', '└': '┘', '┘': '└',
	}
	flipGlyphs = map[rune]rune{
		'^': 'v', 'v': '^', '/': '\\', '\\': '/', '╱': '╲', '╲': '╱', '▲': '▼', '▼': '▲',
		'▀': '▄', '▄': '▀', '\'': '.', '.': '\'', '┌': '└', '└': '┌', '┐': '┘', '┘': '┐',
	}
	// quarterTurnGlyphs maps a glyph to its appearance after a 90 degree counter-clockwise turn.
	quarterTurnGlyphs = map[rune]rune{
		'─': '│', '│': '─', '━': '┃', '┃': '━', '-': '|', '|': '-', '=': '‖', '‖': '=',
		'►': '▲', '▲': '◄', '◄': '▼', '▼': '►', '>': '^', '^': '<', '<': 'v', 'v': '>',
		'/': '\\', '\\': '/', '╱': '╲', '╲': '╱',
	}
)

func swap(table map[rune]rune, r rune) rune {
	if m, ok := table[r]; ok {
		return m
	}
	return r
}

// Mirror returns the sprite flipped horizontally.
func (s Sprite) Mirror() Sprite {
	g := s.grid()
	for _, row := range g {
		for i, j := 0, len(row)-1; i <= j; i, j = i+1, j-1 {
			row[i], row[j] = swap(mirrorGlyphs, row[j]), swap(mirrorGlyphs, row[i])
		}
	}
	return Sprite{Cells: g, Color: s.Color}
}

// Flip returns the sprite flipped vertically.
func (s Sprite) Flip() Sprite {
	g := s.grid()
	out := make([][]rune, len(g))
	for y, row := range g {
		flipped := make([]rune, len(row))
		for x, r := range row {
			flipped[x] = swap(flipGlyphs, r)
		}
		out[len(g)-1-y] = flipped
	}
	return Sprite{Cells: out, Color: s.Color}
}

// quarterTurn rotates the sprite 90 degrees counter-clockwise.
func (s Sprite) quarterTurn() Sprite {
	g := s.grid()
	h, w := len(g), s.Width()
	out := make([][]rune, w)
	for i := range out {
		out[i] = make([]rune, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[w-1-x][y] = swap(quarterTurnGlyphs, g[y][x])
		}
	}
	return Sprite{Cells: out, Color: s.Color}
}

// Rotate turns the sprite counter-clockwise by deg degrees, snapped to the
// nearest multiple of 45. Quarter turns rearrange the glyphs; diagonal
// octants render the sprite as a diagonal line as long as its longest side.
func (s Sprite) Rotate(deg float64) Sprite {
	octant := int(math.Round(deg/45)) % 8
	if octant < 0 {
		octant += 8
	}

	out := s
	for i := 0; i < octant/2; i++ {
		out = out.quarterTurn()
	}
	if octant%2 == 0 {
		return out
	}

	n := Max(s.Width(), s.Height())
	cells := make([][]rune, n)
	for y := range cells {
		cells[y] = make([]rune, n)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	for i := 0; i < n; i++ {
		if octant == 1 || octant == 5 {
			cells[i][n-1-i] = '╱'
		} else {
			cells[i][i] = '╲'
		}
	}
	return Sprite{Cells: cells, Color: s.Color}
}

// WithGlyph returns a copy with the glyph at (x, y) replaced.
func (s Sprite) WithGlyph(x, y int, r rune) Sprite {
	g := s.grid()
	if y >= 0 && y < len(g) && x >= 0 && x < len(g[y]) {
		g[y][x] = r
	}
	return Sprite{Cells: g, Color: s.Color}
}
