package systems

import (
	"testing"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
)

func TestActionState(t *testing.T) {
	tests := []struct {
		curr, prev bool
		want       components.ActionState
	}{
		{false, false, components.ActionState{}},
		{true, false, components.ActionState{Pressed: true, JustPressed: true}},
		{true, true, components.ActionState{Pressed: true}},
		{false, true, components.ActionState{JustReleased: true}},
	}
	for _, tt := range tests {
		if got := actionState(tt.curr, tt.prev); got != tt.want {
			t.Errorf("actionState(%v, %v) = %+v, want %+v", tt.curr, tt.prev, got, tt.want)
		}
	}
}

func TestGetPlayerAction(t *testing.T) {
	in := &components.PlayerInputData{}
	in.CurrentInput[cfg.ActionFire] = true
	in.PreviousInput[cfg.ActionMoveLeft] = true

	if s := GetPlayerAction(in, cfg.ActionFire); !s.JustPressed {
		t.Errorf("fire = %+v, want just pressed", s)
	}
	if s := GetPlayerAction(in, cfg.ActionMoveLeft); !s.JustReleased {
		t.Errorf("left = %+v, want just released", s)
	}
}

// press marks actions as pressed this frame and released the frame before
func press(in *components.InputData, actions ...cfg.ActionID) {
	in.Previous = [cfg.ActionCount]bool{}
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		in.Current[a] = true
	}
}
