package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionFire) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Has(ActionFire) should be true after Set")
	}
	if f.Count(ActionFire) != 2 {
		t.Errorf("Count(ActionFire) = %d, expected 2", f.Count(ActionFire))
	}

	f.Hold(ActionUp)
	if !f.IsHeld(ActionUp) || f.IsHeld(ActionDown) {
		t.Error("Only ActionUp should be held")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) || f.IsHeld(ActionUp) {
		t.Error("Clear should reset actions and held keys")
	}
	if clone.Count(ActionFire) != 2 || !clone.IsHeld(ActionUp) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionFire) || f.IsHeld(ActionLeft) {
		t.Error("Zero frame should report nothing")
	}

	// Zero value lazily allocates
	f.Set(ActionFire)
	f.Hold(ActionLeft)
	if !f.Has(ActionFire) || !f.IsHeld(ActionLeft) {
		t.Error("Zero frame should accept Set and Hold")
	}
}

func TestActionOpposite(t *testing.T) {
	tests := []struct {
		in, want Action
	}{
		{ActionUp, ActionDown},
		{ActionDown, ActionUp},
		{ActionLeft, ActionRight},
		{ActionRight, ActionLeft},
		{ActionFire, ActionNone},
	}

	for _, tc := range tests {
		if got := tc.in.Opposite(); got != tc.want {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventBeamFired}, {Kind: EventHazardDestroyed, X: 3, Y: 4}}}

	if !r.Has(EventHazardDestroyed) {
		t.Error("Has(EventHazardDestroyed) should be true")
	}
	if r.Has(EventGameOver) {
		t.Error("Has(EventGameOver) should be false")
	}
	if EventGameOver.String() != "game_over" {
		t.Errorf("EventGameOver.String() = %q", EventGameOver.String())
	}
}
