package core

import (
	"errors"
	"testing"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"no players", func(c *Config) { c.PlayerIDs = nil }},
		{"three players", func(c *Config) { c.PlayerIDs = []string{"a", "b", "c"} }},
		{"duplicate players", func(c *Config) { c.PlayerIDs = []string{"a", "a"} }},
		{"empty player id", func(c *Config) { c.PlayerIDs = []string{""} }},
		{"no lives", func(c *Config) { c.StartLives = 0 }},
		{"zero move ticks", func(c *Config) { c.EnemyMoveTicks = 0 }},
		{"zero bullet speed", func(c *Config) { c.BulletSpeed = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLifecycle(t *testing.T) {
	g, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if g.Phase() != AwaitingAssets {
		t.Fatalf("phase = %v", g.Phase())
	}
	if _, err := g.Tick(); !errors.Is(err, ErrAssetsNotReady) {
		t.Errorf("Tick before assets: %v", err)
	}
	if err := g.Start(); !errors.Is(err, ErrAssetsNotReady) {
		t.Errorf("Start before assets: %v", err)
	}
	if err := g.Fire("player1"); !errors.Is(err, ErrAssetsNotReady) {
		t.Errorf("Fire before assets: %v", err)
	}

	if err := g.AssetsLoaded(testSprites()); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != PreGame {
		t.Fatalf("phase = %v, want pre-game", g.Phase())
	}
	if err := g.AssetsLoaded(testSprites()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second AssetsLoaded: %v", err)
	}
	if _, err := g.Tick(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Tick in pre-game: %v", err)
	}

	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start: %v", err)
	}
	rep, err := g.Tick()
	if err != nil || rep.Phase != Running {
		t.Errorf("Tick = %+v, %v", rep, err)
	}
}

func TestAssetsLoadedRejectsMissingSprites(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SpriteSet)
	}{
		{"no ships", func(s *SpriteSet) { s.Ships = nil }},
		{"no aliens", func(s *SpriteSet) { s.Aliens = nil }},
		{"nil explosion", func(s *SpriteSet) { s.Explosion.Sprite = nil }},
		{"zero frames", func(s *SpriteSet) { s.PlayerBullet.Frames = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := New(DefaultConfig())
			set := testSprites()
			tt.modify(&set)
			if err := g.AssetsLoaded(set); !errors.Is(err, ErrMissingSprite) {
				t.Errorf("err = %v, want ErrMissingSprite", err)
			}
			if g.Phase() != AwaitingAssets {
				t.Errorf("phase = %v after failed load", g.Phase())
			}
		})
	}
}

func TestSpawnLayout(t *testing.T) {
	g := newRunningGame(t)

	players := g.Players()
	if len(players) != 1 || players[0].X != 330 || players[0].Y != 370 {
		t.Fatalf("players = %+v, want one ship at (330,370)", players)
	}
	if lives, _ := g.Lives("player1"); lives != 3 {
		t.Errorf("lives = %d, want 3", lives)
	}

	enemies := g.Enemies()
	if len(enemies) != 48 {
		t.Fatalf("enemies = %d, want 4 rows of 12", len(enemies))
	}
	for j, wantY := range []float64{30, 64, 98, 132} {
		if y := enemies[j*12].Y; y != wantY {
			t.Errorf("row %d y = %v, want %v", j, y, wantY)
		}
	}
	if g.formation.Dir != Right {
		t.Errorf("formation direction = %v, want right", g.formation.Dir)
	}

	two := newRunningGame(t, "red", "blue")
	ps := two.Players()
	if len(ps) != 2 || ps[0].ID != "red" || ps[1].ID != "blue" {
		t.Fatalf("players = %+v", ps)
	}
	if ps[0].X >= ps[1].X {
		t.Errorf("ships not spread left to right: %v, %v", ps[0].X, ps[1].X)
	}
}

func TestUnknownPlayer(t *testing.T) {
	g := newRunningGame(t)
	if err := g.MoveLeft("ghost"); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("MoveLeft: %v", err)
	}
	if _, err := g.Score("ghost"); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("Score: %v", err)
	}
}

func TestMovementIntentLastWins(t *testing.T) {
	g := newRunningGame(t)
	_ = g.MoveLeft("player1")
	_ = g.MoveRight("player1")
	if _, err := g.Tick(); err != nil {
		t.Fatal(err)
	}
	if x := g.Players()[0].X; x != 340 {
		t.Errorf("x = %v, want 340", x)
	}

	if _, err := g.Tick(); err != nil {
		t.Fatal(err)
	}
	if x := g.Players()[0].X; x != 340 {
		t.Errorf("intent applied twice: x = %v", x)
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	g := newRunningGame(t)
	id := "player1"

	fired := 0
	for i := 0; i < 21; i++ {
		_ = g.Fire(id)
		rep, err := g.Tick()
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range rep.Events {
			if e.Kind == PlayerFired {
				fired++
			}
		}
	}
	if fired != 2 {
		t.Errorf("held fire for 21 ticks fired %d shots, want 2", fired)
	}
	if n := len(g.playerBullets[id]); n != 2 {
		t.Errorf("bullets in flight = %d, want 2", n)
	}

	b := g.playerBullets[id][0]
	ship := g.players[id]
	if b.X+b.W/2 != ship.X+ship.W/2 {
		t.Errorf("bullet centre %v, ship centre %v", b.X+b.W/2, ship.X+ship.W/2)
	}
}

func TestPlayerBulletDestroysEnemyAndRespawns(t *testing.T) {
	g := newRunningGame(t)
	id := "player1"
	g.formation.Units = []*FormationUnit{unitAt(100, 100, 30)}
	g.playerBullets[id] = []*Projectile{bulletAt(110, 110, Up)}
	g.players[id].Score = 980

	rep, err := g.Tick()
	if err != nil {
		t.Fatal(err)
	}

	if score, _ := g.Score(id); score != 1010 {
		t.Errorf("score = %d, want 1010", score)
	}
	if lives, _ := g.Lives(id); lives != 4 {
		t.Errorf("lives = %d, want 4", lives)
	}
	for _, k := range []EventKind{EnemyDestroyed, ExtraLife, LevelUp} {
		if !rep.Has(k) {
			t.Errorf("report missing %v: %+v", k, rep.Events)
		}
	}
	if len(g.playerBullets[id]) != 0 {
		t.Errorf("bullet survived the hit")
	}
	if len(g.explosions) != 1 {
		t.Errorf("explosions = %d, want 1", len(g.explosions))
	}

	st := g.Stats()
	if st.Level != 2 || st.Rows != 5 || st.Enemies != 60 {
		t.Errorf("stats = %+v, want level 2 with 5 rows of 12", st)
	}
}

func TestClearedFormationEscalatesOnce(t *testing.T) {
	g := newRunningGame(t)
	g.formation.Units = nil

	rep, err := g.Tick()
	if err != nil {
		t.Fatal(err)
	}
	levelUps := 0
	for _, e := range rep.Events {
		if e.Kind == LevelUp {
			levelUps++
		}
	}
	if levelUps != 1 || g.Level() != 2 {
		t.Errorf("level ups = %d level = %d, want 1 and 2", levelUps, g.Level())
	}
	if n := len(g.formation.Units); n != 60 {
		t.Errorf("enemies = %d, want 60", n)
	}

	if _, err := g.Tick(); err != nil {
		t.Fatal(err)
	}
	if g.Level() != 2 {
		t.Errorf("level moved again to %d", g.Level())
	}
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	g := newRunningGame(t)
	id := "player1"
	ship := g.players[id]
	g.enemyBullets = []*Projectile{bulletAt(ship.X+5, ship.Y+5, Down), bulletAt(5, 200, Down)}

	rep, err := g.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if lives, _ := g.Lives(id); lives != 2 {
		t.Errorf("lives = %d, want 2", lives)
	}
	if !rep.Has(PlayerHit) || rep.Has(GameEnded) {
		t.Errorf("events = %+v", rep.Events)
	}
	if len(g.enemyBullets) != 1 {
		t.Errorf("enemy bullets = %d, want 1", len(g.enemyBullets))
	}
	x := g.explosions[0]
	if x.X < 0 || x.X+x.W > 700 || x.Y < 0 || x.Y+x.H > 400 {
		t.Errorf("explosion at (%v,%v) leaves the field", x.X, x.Y)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newRunningGame(t)
	id := "player1"
	ship := g.players[id]
	ship.Lives = 1
	g.enemyBullets = []*Projectile{bulletAt(ship.X+5, ship.Y+5, Down), bulletAt(ship.X+10, ship.Y+5, Down)}

	rep, err := g.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if lives, _ := g.Lives(id); lives != 0 {
		t.Errorf("lives = %d, want 0", lives)
	}
	if !g.IsGameOver() || !rep.Has(GameEnded) {
		t.Fatalf("game not over: %+v", rep)
	}
	if rep.Phase != Running {
		t.Errorf("phase = %v, want running until the next tick", rep.Phase)
	}

	rep, err = g.Tick()
	if err != nil || rep.Phase != GameOver || len(rep.Events) != 0 {
		t.Errorf("next tick = %+v, %v", rep, err)
	}
	rep, err = g.Tick()
	if err != nil || rep.Phase != GameOver {
		t.Errorf("tick after game over = %+v, %v", rep, err)
	}
}

func TestInvasionEndsGame(t *testing.T) {
	g := newRunningGame(t)
	g.formation.Units = []*FormationUnit{unitAt(100, 346, 40)}
	g.moveCooldown = 1

	rep, err := g.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if !rep.Has(Invaded) || !g.IsGameOver() {
		t.Errorf("invasion not detected: %+v", rep.Events)
	}
}

func TestFormationMovesOnCooldown(t *testing.T) {
	g := newRunningGame(t)
	x0 := g.formation.Units[0].X

	for i := 0; i < 14; i++ {
		if _, err := g.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if g.formation.Units[0].X != x0 {
		t.Fatalf("formation moved before the cooldown elapsed")
	}
	if _, err := g.Tick(); err != nil {
		t.Fatal(err)
	}
	if g.formation.Units[0].X != x0+6 {
		t.Errorf("x = %v, want %v", g.formation.Units[0].X, x0+6)
	}
}

func TestEnemyFire(t *testing.T) {
	g := newRunningGame(t)
	g.formation.Units = nil
	if err := g.FireEnemyBullet(); !errors.Is(err, ErrEmptyFormation) {
		t.Errorf("FireEnemyBullet on empty formation: %v", err)
	}

	g = newRunningGame(t)
	fired := 0
	for i := 0; i < 60; i++ {
		rep, err := g.Tick()
		if err != nil {
			t.Fatal(err)
		}
		if rep.Has(EnemyFired) {
			fired++
			if i != 59 {
				t.Errorf("enemy fired on tick %d", i+1)
			}
		}
	}
	if fired != 1 || len(g.enemyBullets) != 1 {
		t.Fatalf("fired = %d bullets = %d, want 1", fired, len(g.enemyBullets))
	}

	b := g.enemyBullets[0]
	fromShooter := false
	for _, u := range g.formation.Units {
		if b.Y == u.Y && b.X+b.W/2 == u.X+u.W/2 {
			fromShooter = true
		}
	}
	if !fromShooter {
		t.Errorf("bullet at (%v,%v) does not start at the y and centre of any unit", b.X, b.Y)
	}
}

func TestRenderDrawsEverythingWithoutAnimating(t *testing.T) {
	g := newRunningGame(t)
	g.enemyBullets = []*Projectile{bulletAt(10, 200, Down)}
	frame := g.formation.Units[0].Frame

	s := &fakeSurface{w: 700, h: 400}
	g.Render(s)
	g.Render(s)

	if s.clears != 2 {
		t.Errorf("clears = %d, want 2", s.clears)
	}
	if want := 1 + 48 + 1; len(s.draws) != want {
		t.Errorf("draws = %d, want %d", len(s.draws), want)
	}
	if g.formation.Units[0].Frame != frame {
		t.Errorf("render advanced animation")
	}
}
