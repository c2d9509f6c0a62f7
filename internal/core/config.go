package core

// RuntimeConfig is what the platform tells a game when it starts a run.
type RuntimeConfig struct {
	ScreenW, ScreenH int   // terminal cells available to the playfield
	TickRate         int   // ticks per second
	Seed             int64 // 0 lets the platform pick one
}

func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50}
}

// GameState is the part of a game's status the platform cares about.
type GameState struct {
	Score    int
	GameOver bool
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventBeamFired EventKind = iota
	EventHazardDestroyed
	EventHazardsCleared
	EventGameOver
)

var eventNames = [...]string{
	EventBeamFired:       "beam_fired",
	EventHazardDestroyed: "hazard_destroyed",
	EventHazardsCleared:  "hazards_cleared",
	EventGameOver:        "game_over",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is emitted by a tick at arena coordinates (X, Y).
type Event struct {
	Kind EventKind
	X, Y int
}

// StepResult is the outcome of one Game.Step.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether any event of the given kind happened.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
