package birdshot

// Snapshot contains the observable game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Score      int
	BirdX      int
	BirdY      int
	Facing     string
	Bombs      int
	Beams      int
	Explosions int
	State      string

	// Each bomb is 4 ints: X, Y, VX, VY
	BombData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bombData := make([]int, 0, len(g.bombs)*4)
	for _, b := range g.bombs {
		vx, vy := b.Velocity()
		bombData = append(bombData, b.rect.X, b.rect.Y, vx, vy)
	}

	state := "playing"
	if g.gameOver {
		state = "terminated"
	}

	return Snapshot{
		Tick:       g.tickCount,
		Score:      g.score.Value(),
		BirdX:      g.bird.rect.X,
		BirdY:      g.bird.rect.Y,
		Facing:     g.bird.facing.String(),
		Bombs:      len(g.bombs),
		Beams:      len(g.beams),
		Explosions: len(g.explosions),
		State:      state,
		BombData:   bombData,
	}
}
