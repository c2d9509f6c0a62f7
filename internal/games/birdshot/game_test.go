package birdshot

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/birdshot/internal/assets"
	"github.com/vovakirdan/birdshot/internal/config"
	"github.com/vovakirdan/birdshot/internal/core"
)

func newTestGame(t *testing.T, mutate func(*config.Config)) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	cat, err := assets.Default()
	if err != nil {
		t.Fatal(err)
	}
	g, err := New(cfg, cat)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 42})
	return g
}

func noHazards(c *config.Config) { c.Hazards.Count = 0 }

func fire() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	return in
}

// still returns a bomb that does not move.
func still(cx, cy, r int) *Bomb {
	return &Bomb{rect: core.RectAt(cx, cy, 2*r, 2*r), radius: r, color: core.ColorRed}
}

func TestNewMissingPose(t *testing.T) {
	cat, err := assets.Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Avatar.GameOverPose = 4

	_, err = New(cfg, cat)
	if !errors.Is(err, assets.ErrMissing) {
		t.Errorf("New() with an unknown pose should wrap ErrMissing, got %v", err)
	}
}

func TestResetSpawnsBombs(t *testing.T) {
	g := newTestGame(t, nil)

	snap := g.Snapshot()
	if snap.Bombs != 5 || snap.Beams != 0 || snap.Explosions != 0 {
		t.Errorf("after reset: %d bombs, %d beams, %d explosions", snap.Bombs, snap.Beams, snap.Explosions)
	}
	if snap.BirdX != 850 || snap.BirdY != 350 || snap.Facing != "right" {
		t.Errorf("bird should start centered on (900, 400) facing right, got %+v", snap)
	}
	if snap.State != "playing" || g.State().Score != 0 {
		t.Errorf("fresh game should be playing with no score, got %+v", snap)
	}
}

func TestFireFromCenter(t *testing.T) {
	g := newTestGame(t, noHazards)

	res := g.Step(fire())

	if len(g.beams) != 1 {
		t.Fatalf("expected exactly one beam, got %d", len(g.beams))
	}
	if vx, vy := g.beams[0].Velocity(); vx != 5 || vy != 0 {
		t.Errorf("beam velocity = (%d, %d), expected (5, 0)", vx, vy)
	}
	if !res.Has(core.EventBeamFired) {
		t.Error("firing should emit a beam_fired event")
	}

	// The beam spawned at x=1000 and moved once this frame
	if cx, _ := g.beams[0].Rect().Center(); cx != 1005 {
		t.Errorf("beam center x = %d, expected 1005", cx)
	}
}

func TestFireCountsEveryPress(t *testing.T) {
	g := newTestGame(t, noHazards)

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	in.Set(core.ActionFire)
	g.Step(in)

	if len(g.beams) != 2 {
		t.Errorf("two presses should fire two beams, got %d", len(g.beams))
	}
}

func TestBeamFollowsFacing(t *testing.T) {
	g := newTestGame(t, noHazards)

	// Turn up-left, then fire
	g.Step(hold(core.ActionUp, core.ActionLeft))
	g.Step(fire())

	if vx, vy := g.beams[0].Velocity(); vx != -5 || vy != -5 {
		t.Errorf("beam velocity = (%d, %d), expected (-5, -5)", vx, vy)
	}
}

func TestBeamDestroysBomb(t *testing.T) {
	g := newTestGame(t, noHazards)

	// The beam spawns at x=1000 and reaches x=1005 before collisions are checked
	g.bombs = []*Bomb{still(1030, 400, 20)}
	g.cleared = false

	res := g.Step(fire())

	snap := g.Snapshot()
	if snap.Bombs != 0 || snap.Beams != 0 || snap.Explosions != 1 || snap.Score != 1 {
		t.Errorf("after hit: %+v", snap)
	}
	if !res.Has(core.EventHazardDestroyed) {
		t.Error("expected a hazard_destroyed event")
	}
	if ex, ey := g.explosions[0].Center(); ex != 1030 || ey != 400 {
		t.Errorf("explosion at (%d, %d), expected the bomb center", ex, ey)
	}
	if g.explosions[0].Life() != g.cfg.Effect.Life {
		t.Errorf("explosion life = %d, expected %d", g.explosions[0].Life(), g.cfg.Effect.Life)
	}
	if g.bird.flash == 0 {
		t.Error("bird should flash the hit pose")
	}
}

func TestForcedOverlap(t *testing.T) {
	g := newTestGame(t, noHazards)

	g.bombs = []*Bomb{still(300, 300, 20), still(1400, 800, 20)}
	g.beams = []*Beam{{rect: core.RectAt(300, 300, 80, 24), sprite: g.beamArt}}
	g.cleared = false

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	after := g.Snapshot()

	if after.Bombs != before.Bombs-1 || after.Beams != before.Beams-1 ||
		after.Score != before.Score+1 || after.Explosions != before.Explosions+1 {
		t.Errorf("before %+v, after %+v", before, after)
	}
}

func TestFirstBombInOrderWins(t *testing.T) {
	g := newTestGame(t, noHazards)

	first, second := still(300, 300, 20), still(310, 300, 20)
	g.bombs = []*Bomb{first, second}
	g.beams = []*Beam{{rect: core.RectAt(305, 300, 80, 24), sprite: g.beamArt}}

	g.Step(core.NewInputFrame())

	if len(g.bombs) != 1 || g.bombs[0] != second {
		t.Errorf("the first bomb in population order should be destroyed, left %v", g.bombs)
	}
	if g.State().Score != 1 {
		t.Errorf("one beam should score once, got %d", g.State().Score)
	}
}

func TestEveryBeamIsResolved(t *testing.T) {
	g := newTestGame(t, noHazards)

	// Two beams on two overlapping bombs: removing the first beam must not
	// skip the second
	g.bombs = []*Bomb{still(300, 300, 20), still(305, 300, 20)}
	g.beams = []*Beam{
		{rect: core.RectAt(300, 300, 80, 24), sprite: g.beamArt},
		{rect: core.RectAt(302, 300, 80, 24), sprite: g.beamArt},
	}

	res := g.Step(core.NewInputFrame())

	if len(g.bombs) != 0 || len(g.beams) != 0 || g.State().Score != 2 {
		t.Errorf("expected both hits, got %d bombs, %d beams, score %d", len(g.bombs), len(g.beams), g.State().Score)
	}
	destroyed := 0
	for _, e := range res.Events {
		if e.Kind == core.EventHazardDestroyed {
			destroyed++
		}
	}
	if destroyed != 2 {
		t.Errorf("expected 2 hazard_destroyed events, got %d", destroyed)
	}
}

func TestBeamLeavesArena(t *testing.T) {
	g := newTestGame(t, noHazards)

	g.Step(fire())
	for frame := 0; frame < 119; frame++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.beams) != 1 {
		t.Fatalf("beam at x=1600 should still fly, have %d beams", len(g.beams))
	}

	g.Step(core.NewInputFrame())
	if len(g.beams) != 0 {
		t.Error("beam should be removed the first frame its center leaves the arena")
	}
}

func TestBombHitsBirdEndsGame(t *testing.T) {
	g := newTestGame(t, noHazards)

	// The first bomb drifts into the bird this frame; the second must not move
	hitter := &Bomb{rect: core.RectAt(827, 400, 40, 40), vx: 5, radius: 20}
	other := &Bomb{rect: core.RectAt(100, 100, 40, 40), vx: 5, vy: 5, radius: 20}
	g.bombs = []*Bomb{hitter, other}
	g.cleared = false

	res := g.Step(hold(core.ActionLeft))

	if !res.State.GameOver || !res.Has(core.EventGameOver) {
		t.Fatalf("touching a bomb should end the game, got %+v", res)
	}
	if other.Rect().X != 80 {
		t.Errorf("bombs after the hit should not move, x = %d", other.Rect().X)
	}
	if g.bird.Rect().X != 850 {
		t.Error("bird should not move on the frame the game ends")
	}
	if !reflect.DeepEqual(g.bird.Sprite().Rows(), g.birdLook.dead.Rows()) {
		t.Error("bird should show the game-over pose")
	}

	before := g.Snapshot()
	res = g.Step(fire())
	if len(res.Events) != 0 || !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Step after game over should do nothing")
	}
	if g.Snapshot().State != "terminated" {
		t.Errorf("state = %q, expected terminated", g.Snapshot().State)
	}
}

func TestHazardsClearedOnce(t *testing.T) {
	g := newTestGame(t, noHazards)

	res := g.Step(core.NewInputFrame())
	if !res.Has(core.EventHazardsCleared) {
		t.Error("an empty arena should report hazards cleared")
	}

	// Play goes on
	res = g.Step(hold(core.ActionDown))
	if res.Has(core.EventHazardsCleared) {
		t.Error("hazards cleared should be reported once")
	}
	if res.State.GameOver || g.bird.Rect().Y != 355 {
		t.Errorf("the game should idle with the bird still moving, got %+v", g.Snapshot())
	}
}

func TestExplosionExpires(t *testing.T) {
	g := newTestGame(t, noHazards)
	g.bombs = []*Bomb{still(1030, 400, 20)}
	g.Step(fire())

	for frame := 1; frame < g.cfg.Effect.Life; frame++ {
		g.Step(core.NewInputFrame())
		if len(g.explosions) != 1 {
			t.Fatalf("explosion gone after %d frames", frame)
		}
	}
	g.Step(core.NewInputFrame())
	if len(g.explosions) != 0 {
		t.Error("explosion should be removed once its life reaches zero")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch (i / 30) % 4 {
		case 0:
			inputs[i].Hold(core.ActionUp)
		case 1:
			inputs[i].Hold(core.ActionRight)
		case 2:
			inputs[i].Hold(core.ActionDown)
		case 3:
			inputs[i].Hold(core.ActionLeft)
		}
		if i%7 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, nil)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("same seed and inputs should give the same game:\n%+v\n%+v", s1, s2)
	}
}

func TestSeedChangesBombs(t *testing.T) {
	g := newTestGame(t, nil)
	a := g.Snapshot().BombData

	g.Reset(core.RuntimeConfig{Seed: 43})
	b := g.Snapshot().BombData

	if reflect.DeepEqual(a, b) {
		t.Error("different seeds should place bombs differently")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, noHazards)
	g.bombs = []*Bomb{still(200, 200, 50)}

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// Bird centered on arena (900, 400) lands on cell (45, 10)
	if !strings.ContainsRune(scr.Row(10), '>') {
		t.Errorf("bird beak missing from row 10: %q", scr.Row(10))
	}
	if !strings.Contains(scr.Row(22), "Score: 0") {
		t.Errorf("score label missing from row 22: %q", scr.Row(22))
	}
	if c := scr.GetCell(10, 6); c.Rune != BombChar || c.Color != core.ColorRed {
		t.Errorf("bomb should cover cell (10, 6), got %+v", c)
	}
	if strings.Contains(scr.String(), GameOverText) {
		t.Error("no game over banner while playing")
	}

	g.Step(core.NewInputFrame())
	g.Render(scr)
	if strings.Contains(scr.String(), ClearedText) {
		t.Error("cleared banner should wait for the last bomb")
	}

	g.gameOver = true
	g.Render(scr)
	if !strings.Contains(scr.Row(12), GameOverText) {
		t.Errorf("game over banner missing: %q", scr.Row(12))
	}
}

func TestRenderClearedBanner(t *testing.T) {
	g := newTestGame(t, noHazards)
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(12), ClearedText) {
		t.Errorf("cleared banner missing: %q", scr.Row(12))
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(fire())

	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		scr := core.NewScreen(size[0], size[1])
		g.Render(scr)
	}
}
