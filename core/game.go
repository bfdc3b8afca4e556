// Package core is the invaders simulation: ships, the enemy formation,
// projectiles and explosions advanced one tick at a time. It has no
// dependency on a rendering backend; drawing goes through Surface.
package core

import (
	"fmt"
	"math/rand/v2"
)

// Game owns every entity of one session. It is not safe for concurrent use;
// the caller drives it from a single loop.
type Game struct {
	cfg     Config
	field   Rect
	phase   Phase
	sprites SpriteSet

	order         []string
	players       map[string]*PlayerShip
	playerBullets map[string][]*Projectile
	formation     Formation
	enemyBullets  []*Projectile
	explosions    []*Explosion

	diff         Difficulty
	moveCooldown int
	shotCooldown int
	gameOver     bool

	rng    *rand.Rand
	events []Event
}

// PlayerView is a read-only snapshot of a ship for HUDs and score screens.
type PlayerView struct {
	ID    string
	X, Y  float64
	W, H  float64
	Score int
	Lives int
}

// Stats is a snapshot of the difficulty state.
type Stats struct {
	Level     int
	Rows      int
	MoveTicks int
	ShotTicks int
	Enemies   int
}

func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:           cfg,
		field:         cfg.field(),
		phase:         AwaitingAssets,
		order:         append([]string(nil), cfg.PlayerIDs...),
		players:       make(map[string]*PlayerShip, len(cfg.PlayerIDs)),
		playerBullets: make(map[string][]*Projectile, len(cfg.PlayerIDs)),
		formation: Formation{
			Dir:  Right,
			Step: cfg.FormationStep,
			Drop: cfg.FormationDrop,
		},
		diff: Difficulty{
			Level:     1,
			Rows:      cfg.StartRows,
			MoveTicks: cfg.EnemyMoveTicks,
			ShotTicks: cfg.EnemyShotTicks,
		},
		moveCooldown: cfg.EnemyMoveTicks,
		shotCooldown: cfg.EnemyShotTicks,
		rng:          rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
	return g, nil
}

// AssetsLoaded hands the resolved sprites to the game, spawns the ships and
// the first formation and moves the game to PreGame.
func (g *Game) AssetsLoaded(sprites SpriteSet) error {
	if g.phase != AwaitingAssets {
		return ErrAlreadyStarted
	}
	if err := validateSprites(sprites); err != nil {
		return err
	}
	g.sprites = sprites

	n := len(g.order)
	for i, id := range g.order {
		sheet := sprites.shipFor(i)
		w := float64(sheet.FrameWidth())
		h := float64(sheet.FrameHeight())
		x := g.field.W*float64(i+1)/float64(n+1) - w/2
		ship := &PlayerShip{
			Entity:         newEntity(sheet, x, g.field.H-h),
			ID:             id,
			Lives:          g.cfg.StartLives,
			Speed:          g.cfg.ShipSpeed,
			extraLifeEvery: g.cfg.ExtraLifeEvery,
		}
		ship.X = clamp(ship.X, 0, g.field.W-ship.W)
		g.players[id] = ship
		g.playerBullets[id] = nil
	}

	g.spawnRows()
	g.phase = PreGame
	return nil
}

func validateSprites(s SpriteSet) error {
	if len(s.Ships) == 0 {
		return fmt.Errorf("%w: no ship sprites", ErrMissingSprite)
	}
	for i, sh := range s.Ships {
		if !sh.valid() {
			return fmt.Errorf("%w: ship %d", ErrMissingSprite, i)
		}
	}
	if len(s.Aliens) == 0 {
		return fmt.Errorf("%w: no alien sprites", ErrMissingSprite)
	}
	for i, a := range s.Aliens {
		if !a.valid() {
			return fmt.Errorf("%w: alien %d", ErrMissingSprite, i)
		}
	}
	for name, sh := range map[string]SpriteSheet{
		"player bullet": s.PlayerBullet,
		"enemy bullet":  s.EnemyBullet,
		"explosion":     s.Explosion,
	} {
		if !sh.valid() {
			return fmt.Errorf("%w: %s", ErrMissingSprite, name)
		}
	}
	return nil
}

// Start leaves PreGame.
func (g *Game) Start() error {
	switch g.phase {
	case AwaitingAssets:
		return ErrAssetsNotReady
	case PreGame:
		g.phase = Running
		return nil
	default:
		return ErrAlreadyStarted
	}
}

func (g *Game) ship(id string) (*PlayerShip, error) {
	if g.phase == AwaitingAssets {
		return nil, ErrAssetsNotReady
	}
	p, ok := g.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, id)
	}
	return p, nil
}

// MoveLeft records a movement intent, applied on the next tick. The last
// movement intent before a tick wins.
func (g *Game) MoveLeft(id string) error {
	return g.intendMove(id, Left)
}

func (g *Game) MoveRight(id string) error {
	return g.intendMove(id, Right)
}

func (g *Game) intendMove(id string, dir Direction) error {
	p, err := g.ship(id)
	if err != nil {
		return err
	}
	p.pendingMove = dir
	p.hasMove = true
	return nil
}

// Fire records that the fire control is down for this tick. Call it on every
// tick the control stays down; stop calling it when it is released.
func (g *Game) Fire(id string) error {
	p, err := g.ship(id)
	if err != nil {
		return err
	}
	p.trigger.press()
	return nil
}

// FireEnemyBullet makes a randomly chosen unit of the formation shoot.
func (g *Game) FireEnemyBullet() error {
	if len(g.formation.Units) == 0 {
		return ErrEmptyFormation
	}
	u := g.formation.Units[g.rng.IntN(len(g.formation.Units))]
	sheet := g.sprites.EnemyBullet
	bw := float64(sheet.FrameWidth())
	b := newProjectile(sheet, u.X+u.W/2-bw/2, u.Y, Down, g.cfg.BulletSpeed)
	g.enemyBullets = append(g.enemyBullets, b)
	g.emit(Event{Kind: EnemyFired, X: b.X, Y: b.Y})
	return nil
}

func (g *Game) firePlayerBullet(p *PlayerShip) {
	sheet := g.sprites.PlayerBullet
	x, y := p.muzzle(float64(sheet.FrameWidth()))
	b := newProjectile(sheet, x, y, Up, g.cfg.BulletSpeed)
	b.Owner = p.ID
	g.playerBullets[p.ID] = append(g.playerBullets[p.ID], b)
	g.emit(Event{Kind: PlayerFired, PlayerID: p.ID, X: b.X, Y: b.Y})
}

// spawnRows fills the formation with the current number of rows, stacked
// downward from the formation top. Row kinds cycle through the alien sprites.
func (g *Game) spawnRows() {
	g.formation.Dir = Right
	y := g.cfg.FormationTop
	for j := 0; j < g.diff.Rows; j++ {
		kind := j % len(g.sprites.Aliens)
		sheet := g.sprites.Aliens[kind]
		row := SpawnRow(sheet, kind, y, g.field, g.cfg.RowGap, g.cfg.HitScore)
		g.formation.Units = append(g.formation.Units, row...)
		y += float64(sheet.FrameHeight()) + g.cfg.RowGap
	}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) IsGameOver() bool { return g.gameOver }

func (g *Game) Level() int { return g.diff.Level }

func (g *Game) Score(id string) (int, error) {
	p, err := g.ship(id)
	if err != nil {
		return 0, err
	}
	return p.Score, nil
}

func (g *Game) Lives(id string) (int, error) {
	p, err := g.ship(id)
	if err != nil {
		return 0, err
	}
	return p.Lives, nil
}

// Players returns the ships in spawn order.
func (g *Game) Players() []PlayerView {
	out := make([]PlayerView, 0, len(g.order))
	for _, id := range g.order {
		p, ok := g.players[id]
		if !ok {
			continue
		}
		out = append(out, PlayerView{
			ID: p.ID, X: p.X, Y: p.Y, W: p.W, H: p.H,
			Score: p.Score, Lives: p.Lives,
		})
	}
	return out
}

func (g *Game) Stats() Stats {
	return Stats{
		Level:     g.diff.Level,
		Rows:      g.diff.Rows,
		MoveTicks: g.diff.MoveTicks,
		ShotTicks: g.diff.ShotTicks,
		Enemies:   len(g.formation.Units),
	}
}

// Enemies returns the bounds of the live formation units in formation order.
func (g *Game) Enemies() []Rect {
	out := make([]Rect, len(g.formation.Units))
	for i, u := range g.formation.Units {
		out[i] = u.Bounds()
	}
	return out
}

// Render draws every live entity. It does not advance animations.
func (g *Game) Render(s Surface) {
	s.Clear()
	if g.phase == AwaitingAssets {
		return
	}
	for _, id := range g.order {
		g.players[id].Render(s)
	}
	for _, u := range g.formation.Units {
		u.Render(s)
	}
	for _, id := range g.order {
		for _, b := range g.playerBullets[id] {
			b.Render(s)
		}
	}
	for _, b := range g.enemyBullets {
		b.Render(s)
	}
	for _, x := range g.explosions {
		x.Render(s)
	}
}
