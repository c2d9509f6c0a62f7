package core

import (
	"reflect"
	"testing"
)

func TestSpriteDimensions(t *testing.T) {
	sp := NewSprite([]string{"abc", "d", "ef"}, ColorRed)

	if sp.Width() != 3 {
		t.Errorf("Width() = %d, expected 3", sp.Width())
	}
	if sp.Height() != 3 {
		t.Errorf("Height() = %d, expected 3", sp.Height())
	}
	if sp.At(2, 1) != ' ' {
		t.Errorf("At() past a short row should be space, got %q", sp.At(2, 1))
	}
	if sp.At(-1, 0) != ' ' || sp.At(0, 5) != ' ' {
		t.Error("At() out of range should be space")
	}
}

func TestSpriteMirror(t *testing.T) {
	sp := NewSprite([]string{"<o)", "/_ "}, ColorYellow)
	got := sp.Mirror()

	expected := []string{"(o>", " _\\"}
	if !reflect.DeepEqual(got.Rows(), expected) {
		t.Errorf("Mirror() = %q, expected %q", got.Rows(), expected)
	}
	if got.Color != ColorYellow {
		t.Error("Mirror should keep the color")
	}

	// Mirroring twice restores the original (padded) art
	if !reflect.DeepEqual(got.Mirror().Rows(), []string{"<o)", "/_ "}) {
		t.Errorf("Mirror twice = %q", got.Mirror().Rows())
	}
}

func TestSpriteFlip(t *testing.T) {
	sp := NewSprite([]string{"^a", "/b"}, ColorDefault)
	got := sp.Flip()

	expected := []string{"\\b", "va"}
	if !reflect.DeepEqual(got.Rows(), expected) {
		t.Errorf("Flip() = %q, expected %q", got.Rows(), expected)
	}
}

func TestSpriteRotate(t *testing.T) {
	beam := NewSprite([]string{"━━►"}, ColorCyan)

	tests := []struct {
		name     string
		deg      float64
		expected []string
	}{
		{"right", 0, []string{"━━►"}},
		{"up", 90, []string{"▲", "┃", "┃"}},
		{"left", 180, []string{"◄━━"}},
		{"down", -90, []string{"┃", "┃", "▼"}},
		{"snaps to nearest octant", 10, []string{"━━►"}},
		{"up-right", 45, []string{"  ╱", " ╱ ", "╱  "}},
		{"up-left", 135, []string{"╲  ", " ╲ ", "  ╲"}},
		{"down-left", -135, []string{"  ╱", " ╱ ", "╱  "}},
		{"down-right", -45, []string{"╲  ", " ╲ ", "  ╲"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := beam.Rotate(tc.deg)
			if !reflect.DeepEqual(got.Rows(), tc.expected) {
				t.Errorf("Rotate(%v) = %q, expected %q", tc.deg, got.Rows(), tc.expected)
			}
			if got.Color != ColorCyan {
				t.Error("Rotate should keep the color")
			}
		})
	}
}

func TestSpriteWithGlyph(t *testing.T) {
	sp := NewSprite([]string{"ab", "cd"}, ColorDefault)
	marked := sp.WithGlyph(1, 1, '*')

	if marked.At(1, 1) != '*' {
		t.Errorf("WithGlyph did not set glyph, got %q", marked.At(1, 1))
	}
	if sp.At(1, 1) != 'd' {
		t.Error("WithGlyph should not modify the original sprite")
	}

	// Out of range is a no-op
	same := sp.WithGlyph(5, 5, '*')
	if !reflect.DeepEqual(same.Rows(), sp.Rows()) {
		t.Errorf("WithGlyph out of range changed sprite: %q", same.Rows())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		want  Color
		valid bool
	}{
		{"red", ColorRed, true},
		{"Bright_Cyan", ColorBrightCyan, true},
		{" gray ", ColorGray, true},
		{"", ColorDefault, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if ok != tc.valid {
			t.Errorf("ParseColor(%q) ok = %v, expected %v", tc.name, ok, tc.valid)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}
