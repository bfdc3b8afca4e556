package systems

import (
	"testing"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdatePauseIgnoredBeforeStart(t *testing.T) {
	e := newTestECS()
	spawnTestSession(e, "player1")
	press(getOrCreateInput(e), cfg.ActionPause)

	if UpdatePause(e) {
		t.Fatal("quit requested")
	}
	if GetOrCreatePause(e).IsPaused {
		t.Error("paused a game that has not started")
	}
}

func TestUpdatePauseMenu(t *testing.T) {
	e := newTestECS()
	s := spawnTestSession(e, "player1")
	s.Started = true
	input := getOrCreateInput(e)

	press(input, cfg.ActionPause)
	UpdatePause(e)
	pause := GetOrCreatePause(e)
	if !pause.IsPaused || pause.SelectedOption != components.MenuResume {
		t.Fatalf("after pause: %+v", *pause)
	}

	ran := false
	WithPauseCheck(func(*ecs.ECS) { ran = true })(e)
	if ran {
		t.Error("gameplay system ran while paused")
	}

	// up wraps from Resume to Quit
	press(input, cfg.ActionMenuUp)
	UpdatePause(e)
	if pause.SelectedOption != components.MenuQuit {
		t.Fatalf("selected = %v, want quit", pause.SelectedOption)
	}

	press(input, cfg.ActionMenuSelect)
	if !UpdatePause(e) {
		t.Error("selecting quit did not report it")
	}
	if !pause.QuitRequested {
		t.Error("QuitRequested not set")
	}
}

func TestUpdatePauseIgnoredWhileEnding(t *testing.T) {
	e := newTestECS()
	s := spawnTestSession(e, "player1")
	s.Started = true
	s.EndTimer = 10
	press(getOrCreateInput(e), cfg.ActionPause)

	UpdatePause(e)
	if GetOrCreatePause(e).IsPaused {
		t.Error("paused during the end delay")
	}
}
