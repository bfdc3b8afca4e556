package components

import (
	"github.com/P1NHE4D/SpaceInvadersClient/network"
	"github.com/yohamta/donburi"
)

// HighScoreTab selects which leaderboard is shown
type HighScoreTab int

const (
	TabSingle HighScoreTab = iota
	TabMulti
)

// HighScoresData holds the fetched leaderboards (singleton)
type HighScoresData struct {
	Tab     HighScoreTab
	Single  []network.SpHighScore
	Multi   []network.MpHighScore
	Loading bool
	Err     error
	Back    bool
}

var HighScores = donburi.NewComponentType[HighScoresData]()
