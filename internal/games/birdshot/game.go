// Package birdshot implements a bird that dodges and shoots bouncing bombs.
// The bird moves in eight directions and fires beams along its heading;
// touching a bomb ends the game.
package birdshot

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/birdshot/internal/assets"
	"github.com/vovakirdan/birdshot/internal/config"
	"github.com/vovakirdan/birdshot/internal/core"
)

// Game owns every entity and advances them one frame per Step.
type Game struct {
	cfg   config.Config
	arena Arena

	birdLook  birdLook
	beamArt   core.Sprite
	blastArt  core.Sprite
	backdrop  core.Sprite
	scoreTint core.Color

	rng        *rand.Rand
	bird       *Bird
	bombs      []*Bomb
	beams      []*Beam
	explosions []*Explosion
	score      Score

	tickCount uint64
	gameOver  bool
	cleared   bool // Hazards-cleared event already emitted
}

// New creates a game from the configuration and the asset catalog. Every
// sprite the game needs is resolved here so a missing asset fails early.
func New(cfg config.Config, cat *assets.Catalog) (*Game, error) {
	look, err := loadBirdLook(cfg.Avatar, cat)
	if err != nil {
		return nil, fmt.Errorf("birdshot: %w", err)
	}

	return &Game{
		cfg:       cfg,
		arena:     Arena{W: cfg.Arena.Width, H: cfg.Arena.Height},
		birdLook:  look,
		beamArt:   cat.Beam(),
		blastArt:  cat.Explosion(),
		backdrop:  cat.Background(),
		scoreTint: cat.ScoreColor(),
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "birdshot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Birdshot"
}

// Reset places the bird at its start and spawns a fresh set of bombs from
// the seed. Screen size in rc does not matter; rendering scales the arena.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.bird = newBird(g.cfg.Avatar, g.birdLook)

	g.bombs = make([]*Bomb, 0, g.cfg.Hazards.Count)
	for i, n := 0, g.cfg.Hazards.Count; i < n; i++ {
		g.bombs = append(g.bombs, NewBomb(g.rng, g.cfg.Hazards, g.arena))
	}
	g.beams = nil
	g.explosions = nil
	g.score = Score{}
	g.tickCount = 0
	g.gameOver = false
	g.cleared = false
}

// Step advances the game by one frame. The order of the phases matters:
// fire, explosions, bombs (which may end the game), bird, beams, collisions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	var events []core.Event

	for i, n := 0, in.Count(core.ActionFire); i < n; i++ {
		beam := NewBeam(g.bird, g.cfg.Beam, g.beamArt)
		g.beams = append(g.beams, beam)
		x, y := beam.Rect().Center()
		events = append(events, core.Event{Kind: core.EventBeamFired, X: x, Y: y})
	}

	alive := g.explosions[:0]
	for _, e := range g.explosions {
		e.Tick()
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	g.explosions = alive

	// A bomb that touches the bird ends the game before anything else moves
	for _, b := range g.bombs {
		b.Update(g.arena)
		if b.Rect().Intersects(g.bird.Rect()) {
			g.bird.Die()
			g.gameOver = true
			x, y := g.bird.Rect().Center()
			events = append(events, core.Event{Kind: core.EventGameOver, X: x, Y: y})
			return core.StepResult{State: g.State(), Events: events}
		}
	}

	g.bird.Update(in, g.arena)

	if len(g.beams) > 0 {
		flying := g.beams[:0]
		for _, b := range g.beams {
			b.Update()
			if !b.Exited(g.arena) {
				flying = append(flying, b)
			}
		}
		g.beams = flying
	}

	events = g.resolveHits(events)

	if len(g.bombs) == 0 && !g.cleared {
		g.cleared = true
		events = append(events, core.Event{Kind: core.EventHazardsCleared})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// resolveHits visits every beam once. A beam destroys the first bomb it
// touches in population order and is spent; a beam that touches nothing
// keeps flying.
func (g *Game) resolveHits(events []core.Event) []core.Event {
	if len(g.beams) == 0 || len(g.bombs) == 0 {
		return events
	}

	flying := make([]*Beam, 0, len(g.beams))
	for _, beam := range g.beams {
		hit := -1
		for i, b := range g.bombs {
			if beam.Rect().Intersects(b.Rect()) {
				hit = i
				break
			}
		}
		if hit < 0 {
			flying = append(flying, beam)
			continue
		}

		bomb := g.bombs[hit]
		g.bombs = append(g.bombs[:hit], g.bombs[hit+1:]...)

		x, y := bomb.Rect().Center()
		g.explosions = append(g.explosions, NewExplosion(x, y, g.cfg.Effect.Life, g.cfg.Effect.FramePeriod, g.blastArt))
		g.bird.Hit()
		g.score.Increment()
		events = append(events, core.Event{Kind: core.EventHazardDestroyed, X: x, Y: y})
	}
	g.beams = flying
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.gameOver,
	}
}

// Arena returns the logical play field size.
func (g *Game) Arena() Arena {
	return g.arena
}
