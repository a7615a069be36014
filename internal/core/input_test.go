package core

import (
	"testing"

	"github.com/vovakirdan/tilemerge/internal/engine"
)

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action   Action
		expected engine.Direction
	}{
		{ActionLeft, engine.Left},
		{ActionRight, engine.Right},
		{ActionUp, engine.Up},
		{ActionDown, engine.Down},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if !ok {
				t.Fatalf("%v should map to a direction", tc.action)
			}
			if dir != tc.expected {
				t.Errorf("Direction() = %v, expected %v", dir, tc.expected)
			}
		})
	}
}

func TestNonMoveActionsHaveNoDirection(t *testing.T) {
	for _, a := range []Action{ActionNone, ActionRestart, ActionHelp, ActionQuit} {
		if _, ok := a.Direction(); ok {
			t.Errorf("%v should not map to a direction", a)
		}
	}
}
