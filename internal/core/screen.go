package core

import "strings"

// Cell is one glyph with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a fixed-size grid of cells the game draws into each frame.
// Writes outside the grid are dropped and reads outside it return a blank cell,
// so callers never need to clip.
type Screen struct {
	width, height int
	cells         []Cell // row-major
}

func NewScreen(width, height int) *Screen {
	s := &Screen{width: max(width, 0), height: max(height, 0)}
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the grid size. The overlapping top-left region is kept.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	next := NewScreen(width, height)
	w := min(width, s.width)
	for y := 0; y < min(height, s.height); y++ {
		copy(next.cells[y*width:y*width+w], s.cells[y*s.width:y*s.width+w])
	}
	*s = *next
}

// Clear resets every cell to an uncolored space.
func (s *Screen) Clear() { s.Fill(' ') }

func (s *Screen) Fill(r rune) {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: r}
	}
}

// Set writes r in the default color.
func (s *Screen) Set(x, y int, r rune) { s.SetCell(x, y, r, ColorDefault) }

func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

func (s *Screen) Get(x, y int) rune { return s.GetCell(x, y).Rune }

func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes text left to right from (x, y), one cell per rune.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, r, c)
	}
}

func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	s.DrawTextColor((s.width-len([]rune(text)))/2, y, text, c)
}

// DrawRect fills r with the given glyph.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, fill, c)
		}
	}
}

// DrawBox outlines r with single-line box drawing runes.
func (s *Screen) DrawBox(r Rect, c Color) {
	left, top, right, bottom := r.X, r.Y, r.Right()-1, r.Bottom()-1
	for x := left + 1; x < right; x++ {
		s.SetCell(x, top, '─', c)
		s.SetCell(x, bottom, '─', c)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetCell(left, y, '│', c)
		s.SetCell(right, y, '│', c)
	}
	s.SetCell(left, top, '┌', c)
	s.SetCell(right, top, '┐', c)
	s.SetCell(left, bottom, '└', c)
	s.SetCell(right, bottom, '┘', c)
}

// Blit copies a sprite with its top-left corner at (x, y).
// Spaces in the sprite are transparent.
func (s *Screen) Blit(sp Sprite, x, y int) {
	for dy, row := range sp.Cells {
		for dx, r := range row {
			if r != ' ' {
				s.SetCell(x+dx, y+dy, r, sp.Color)
			}
		}
	}
}

func (s *Screen) BlitCentered(sp Sprite, cx, cy int) {
	s.Blit(sp, cx-sp.Width()/2, cy-sp.Height()/2)
}

// String returns the glyphs without color, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns row y as plain text. Rows outside the grid are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
