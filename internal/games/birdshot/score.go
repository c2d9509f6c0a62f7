package birdshot

import "fmt"

// Score counts destroyed bombs. It only goes up.
type Score struct {
	value int
}

// Increment adds one point.
func (s *Score) Increment() { s.value++ }

// Value returns the current score.
func (s *Score) Value() int { return s.value }

// Label returns the text shown on screen for the current score.
func (s *Score) Label() string {
	return fmt.Sprintf("Score: %d", s.value)
}
