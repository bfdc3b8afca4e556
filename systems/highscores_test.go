package systems

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/network"
)

func TestHighScoreRows(t *testing.T) {
	hs := &components.HighScoresData{}
	for i := 0; i < 12; i++ {
		hs.Single = append(hs.Single, network.SpHighScore{Name: fmt.Sprintf("p%d", i), Score: 1000 - i})
	}
	hs.Multi = []network.MpHighScore{{Player1: "ann", Player2: "bob", Score: 70}}

	rows := highScoreRowsFor(hs)
	if len(rows) != highScoreRows {
		t.Fatalf("rows = %d, want %d", len(rows), highScoreRows)
	}
	if !strings.HasPrefix(rows[0], " 1. p0") || !strings.HasSuffix(rows[0], "001000") {
		t.Errorf("first row = %q", rows[0])
	}

	hs.Tab = components.TabMulti
	rows = highScoreRowsFor(hs)
	if len(rows) != 1 || !strings.Contains(rows[0], "ann") || !strings.Contains(rows[0], "bob") {
		t.Errorf("multi rows = %v", rows)
	}
}

func TestUpdateHighScores(t *testing.T) {
	e := newTestECS()
	hs := GetOrCreateHighScores(e)
	if !hs.Loading {
		t.Error("new leaderboard should start loading")
	}
	input := getOrCreateInput(e)

	press(input, cfg.ActionMenuRight)
	UpdateHighScores(e)
	if hs.Tab != components.TabMulti {
		t.Errorf("tab = %v, want multi", hs.Tab)
	}
	press(input, cfg.ActionMenuLeft)
	UpdateHighScores(e)
	if hs.Tab != components.TabSingle {
		t.Errorf("tab = %v, want single", hs.Tab)
	}

	press(input, cfg.ActionMenuBack)
	UpdateHighScores(e)
	if !hs.Back {
		t.Error("back not requested")
	}
}

func TestSetHighScores(t *testing.T) {
	e := newTestECS()
	boom := errors.New("offline")
	SetHighScores(e, nil, nil, boom)

	hs := GetOrCreateHighScores(e)
	if hs.Loading || !errors.Is(hs.Err, boom) {
		t.Errorf("after failed fetch: loading=%v err=%v", hs.Loading, hs.Err)
	}
}
