package core

import "fmt"

// Config holds the tunables of one game session.
type Config struct {
	Width  int
	Height int

	// PlayerIDs lists one or two players in spawn order, left to right.
	PlayerIDs []string

	ShipSpeed   float64
	BulletSpeed float64

	FormationStep float64
	FormationDrop float64
	FormationTop  float64
	// RowGap is the spacing between units in a row and between rows.
	RowGap float64

	HitScore       int
	StartLives     int
	StartRows      int
	ExtraLifeEvery int

	EnemyMoveTicks  int
	EnemyShotTicks  int
	FireRepeatTicks int

	// CellSize is the broadphase grid cell used for collision checks.
	CellSize int

	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Width:           700,
		Height:          400,
		PlayerIDs:       []string{"player1"},
		ShipSpeed:       10,
		BulletSpeed:     3,
		FormationStep:   6,
		FormationDrop:   10,
		FormationTop:    30,
		RowGap:          10,
		HitScore:        40,
		StartLives:      3,
		StartRows:       4,
		ExtraLifeEvery:  1000,
		EnemyMoveTicks:  15,
		EnemyShotTicks:  60,
		FireRepeatTicks: 20,
		CellSize:        32,
		Seed:            1,
	}
}

// Validate returns an error wrapping ErrInvalidConfig describing the first problem found.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: field size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case len(c.PlayerIDs) < 1 || len(c.PlayerIDs) > 2:
		return fmt.Errorf("%w: need 1 or 2 players, got %d", ErrInvalidConfig, len(c.PlayerIDs))
	case c.ShipSpeed <= 0 || c.BulletSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case c.FormationStep <= 0 || c.FormationDrop <= 0:
		return fmt.Errorf("%w: formation step and drop must be positive", ErrInvalidConfig)
	case c.RowGap < 0 || c.FormationTop < 0:
		return fmt.Errorf("%w: negative formation layout", ErrInvalidConfig)
	case c.HitScore < 0:
		return fmt.Errorf("%w: negative hit score", ErrInvalidConfig)
	case c.StartLives < 1 || c.StartRows < 1:
		return fmt.Errorf("%w: need at least one life and one row", ErrInvalidConfig)
	case c.ExtraLifeEvery <= 0:
		return fmt.Errorf("%w: extra life threshold must be positive", ErrInvalidConfig)
	case c.EnemyMoveTicks < 1 || c.EnemyShotTicks < 1 || c.FireRepeatTicks < 0:
		return fmt.Errorf("%w: cooldowns must be positive", ErrInvalidConfig)
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size must be positive", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.PlayerIDs))
	for _, id := range c.PlayerIDs {
		if id == "" {
			return fmt.Errorf("%w: empty player id", ErrInvalidConfig)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate player id %q", ErrInvalidConfig, id)
		}
		seen[id] = true
	}
	return nil
}

func (c Config) field() Rect {
	return Rect{W: float64(c.Width), H: float64(c.Height)}
}
