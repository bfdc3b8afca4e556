package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverHighScores
	GameOverMenu
)

// GameOverStage is the step the game over screen is on
type GameOverStage int

const (
	StageNameEntry GameOverStage = iota // waiting for names, or a submission in flight
	StageMenu
)

// GameOverData stores the final result and the game over menu state
type GameOverData struct {
	Stage          GameOverStage
	SelectedOption GameOverOption

	Score     int
	Level     int
	PlayerIDs []string
	Multi     bool

	Best    int  // local best for this mode, after this game
	NewBest bool // this game set Best
	Status  string
}

var GameOver = donburi.NewComponentType[GameOverData]()
