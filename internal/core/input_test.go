package core

import "testing"

func TestInputFrameDirectionLastWins(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionLeft)

	if f.Direction != ActionLeft {
		t.Errorf("Direction = %v, expected Left", f.Direction)
	}
	if f.Has(ActionUp) {
		t.Error("Up should be replaced by the later Left")
	}
	if !f.Has(ActionLeft) {
		t.Error("Left should be set")
	}
}

func TestInputFrameFlags(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionNone)

	if !f.Has(ActionPause) {
		t.Error("Pause should be set")
	}
	if f.Has(ActionRestart) {
		t.Error("Restart should not be set")
	}

	f.Clear()
	if f.Has(ActionPause) || f.Direction != ActionNone {
		t.Error("Clear should reset every action")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionUp, "Up"},
		{ActionRight, "Right"},
		{ActionSnapshot, "Snapshot"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
