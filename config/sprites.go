package config

// SpriteNames maps the manifest image resources onto the roles the game
// needs. Ships are handed out to players in order.
type SpriteNames struct {
	Ships        []string
	Aliens       []string
	PlayerBullet string
	EnemyBullet  string
	Explosion    string
}

// ParadeConfig describes the alien march shown under the main menu
type ParadeConfig struct {
	Count   int
	Spacing float64
	Scale   float64
}

var Sprites SpriteNames
var Parade ParadeConfig

func init() {
	Sprites = SpriteNames{
		Ships:        []string{"RedFighter", "BlueFighter"},
		Aliens:       []string{"Android", "Squid", "Death"},
		PlayerBullet: "Bullet",
		EnemyBullet:  "EnemyBullet",
		Explosion:    "Explosion",
	}

	Parade = ParadeConfig{
		Count:   6,
		Spacing: 110,
		Scale:   0.5,
	}
}
