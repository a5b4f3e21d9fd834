package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	in := NewInputFrame()

	if in.Has(ActionLaunch) {
		t.Error("Empty frame should have no actions")
	}

	in.Set(ActionLaunch)
	if !in.Has(ActionLaunch) {
		t.Error("Has(ActionLaunch) should be true after Set")
	}

	in.Clear()
	if in.Has(ActionLaunch) {
		t.Error("Has(ActionLaunch) should be false after Clear")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected float64
	}{
		{"no movement", nil, 0},
		{"left held", []Action{ActionLeft}, -1},
		{"right held", []Action{ActionRight}, 1},
		{"both held cancel out", []Action{ActionLeft, ActionRight}, 0},
		{"movement ignores other actions", []Action{ActionRight, ActionPause}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := NewInputFrame()
			for _, a := range tc.actions {
				in.Set(a)
			}
			if dir := in.Direction(); dir != tc.expected {
				t.Errorf("Direction() = %v, expected %v", dir, tc.expected)
			}
		})
	}
}

func TestInputFrameClone(t *testing.T) {
	in := NewInputFrame()
	in.Set(ActionLeft)

	clone := in.Clone()
	clone.Set(ActionRight)

	if in.Has(ActionRight) {
		t.Error("Mutating the clone should not affect the original")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should carry the original's actions")
	}
}
