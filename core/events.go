package core

// Phase is the lifecycle state of a Game.
type Phase int

const (
	AwaitingAssets Phase = iota
	PreGame
	Running
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingAssets:
		return "awaiting-assets"
	case PreGame:
		return "pre-game"
	case Running:
		return "running"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

type EventKind int

const (
	EnemyDestroyed EventKind = iota
	PlayerHit
	ExtraLife
	LevelUp
	EnemyFired
	PlayerFired
	Invaded
	GameEnded
)

func (k EventKind) String() string {
	switch k {
	case EnemyDestroyed:
		return "enemy-destroyed"
	case PlayerHit:
		return "player-hit"
	case ExtraLife:
		return "extra-life"
	case LevelUp:
		return "level-up"
	case EnemyFired:
		return "enemy-fired"
	case PlayerFired:
		return "player-fired"
	case Invaded:
		return "invaded"
	case GameEnded:
		return "game-ended"
	default:
		return "unknown"
	}
}

// Event is something that happened during a tick. X and Y locate it on the
// field where that makes sense. Value carries the points awarded, the lives
// left or the new level depending on Kind.
type Event struct {
	Kind     EventKind
	PlayerID string
	X, Y     float64
	Value    int
}

// Report is the outcome of one Tick.
type Report struct {
	Events []Event
	Phase  Phase
}

// Has reports whether any event of kind k happened.
func (r Report) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
