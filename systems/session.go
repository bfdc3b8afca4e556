package systems

import (
	"errors"
	"fmt"
	"time"

	"github.com/P1NHE4D/SpaceInvadersClient/archetypes"
	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/core"
	"github.com/P1NHE4D/SpaceInvadersClient/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GameResult is what the game over screen needs from a finished session
type GameResult struct {
	PlayerIDs []string
	Scores    []int // per player, same order as PlayerIDs
	Total     int
	Level     int
	Multi     bool
}

// NewGameConfig maps the loaded settings onto a simulation config. A zero
// debug seed picks a fresh one from the clock.
func NewGameConfig(playerIDs []string) core.Config {
	g := cfg.Gameplay
	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return core.Config{
		Width:           cfg.C.Width,
		Height:          cfg.C.Height,
		PlayerIDs:       playerIDs,
		ShipSpeed:       g.ShipSpeed,
		BulletSpeed:     g.BulletSpeed,
		FormationStep:   g.FormationStep,
		FormationDrop:   g.FormationDrop,
		FormationTop:    g.FormationTop,
		RowGap:          g.RowGap,
		HitScore:        g.HitScore,
		StartLives:      g.StartLives,
		StartRows:       g.StartRows,
		ExtraLifeEvery:  g.ExtraLifeEvery,
		EnemyMoveTicks:  g.EnemyMoveTicks,
		EnemyShotTicks:  g.EnemyShotTicks,
		FireRepeatTicks: g.FireRepeatTicks,
		CellSize:        g.CellSize,
		Seed:            seed,
	}
}

// PlayerIDsFor returns the simulation ids for a one or two player game
func PlayerIDsFor(multi bool) []string {
	if multi {
		return []string{"player1", "player2"}
	}
	return []string{"player1"}
}

// SetupSession builds the simulation, hands it the sprites and spawns one
// player entity per ship. The game is left in PreGame.
func SetupSession(e *ecs.ECS, multi bool, sprites core.SpriteSet) (*components.SessionData, error) {
	ids := PlayerIDsFor(multi)
	game, err := core.New(NewGameConfig(ids))
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	if err := game.AssetsLoaded(sprites); err != nil {
		return nil, fmt.Errorf("load sprites: %w", err)
	}

	entry := archetypes.Session.Spawn(e)
	components.Session.SetValue(entry, components.SessionData{
		Game:      game,
		PlayerIDs: ids,
		Multi:     multi,
	})

	for i, id := range ids {
		p := archetypes.Player.Spawn(e)
		components.Player.SetValue(p, components.PlayerData{
			ID:    id,
			Index: i,
			Color: cfg.HUD.PlayerColor[i%len(cfg.HUD.PlayerColor)],
		})
		components.PlayerInput.SetValue(p, components.PlayerInputData{
			ControlScheme: cfg.SchemeFor(i),
		})
	}

	logging.Named("session").Info("session ready",
		zap.Strings("players", ids), zap.Bool("multi", multi))
	return components.Session.Get(entry), nil
}

// GetSession returns the singleton session, if one was set up
func GetSession(e *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// NewUpdateSession creates the system that drives the simulation. onEnd is
// called once, after the game has ended and the end delay ran out.
func NewUpdateSession(onEnd func(GameResult)) ecs.System {
	return func(e *ecs.ECS) {
		s, ok := GetSession(e)
		if !ok || s.Ended {
			return
		}

		if s.Game.Phase() == core.PreGame {
			input := getOrCreateInput(e)
			if GetAction(input, cfg.ActionStart).JustPressed {
				if err := s.Game.Start(); err != nil {
					s.Err = err
					return
				}
				s.Started = true
				PlaySFX(e, cfg.SoundMenuSelect)
				SpawnBanner(e, fmt.Sprintf("LEVEL %d", s.Game.Level()), cfg.Banner.TextColor)
			}
			return
		}

		if s.EndTimer > 0 {
			s.EndTimer--
			if s.EndTimer == 0 {
				s.Ended = true
				onEnd(resultOf(s))
				return
			}
		}

		feedIntents(e, s)

		report, err := s.Game.Tick()
		if err != nil {
			if !errors.Is(err, s.Err) {
				logging.Named("session").Error("tick failed", zap.Error(err))
			}
			s.Err = err
			return
		}
		s.Last = report
		HandleEvents(e, s, report)
	}
}

// feedIntents forwards this frame's held actions to the simulation. A
// single player may use any device; in a shared game each player polls
// their own scheme or gamepad.
func feedIntents(e *ecs.ECS, s *components.SessionData) {
	if !s.Multi {
		input := getOrCreateInput(e)
		applyIntents(s.Game, s.PlayerIDs[0], input.Current)
		return
	}
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		in := components.PlayerInput.Get(entry)
		applyIntents(s.Game, p.ID, in.CurrentInput)
	})
}

type intentTarget interface {
	MoveLeft(id string) error
	MoveRight(id string) error
	Fire(id string) error
}

// applyIntents holds both directions as no move
func applyIntents(g intentTarget, id string, actions [cfg.ActionCount]bool) {
	left, right := actions[cfg.ActionMoveLeft], actions[cfg.ActionMoveRight]
	switch {
	case left && !right:
		_ = g.MoveLeft(id)
	case right && !left:
		_ = g.MoveRight(id)
	}
	if actions[cfg.ActionFire] {
		_ = g.Fire(id)
	}
}

func resultOf(s *components.SessionData) GameResult {
	r := GameResult{
		PlayerIDs: s.PlayerIDs,
		Level:     s.Game.Level(),
		Multi:     s.Multi,
	}
	for _, p := range s.Game.Players() {
		r.Scores = append(r.Scores, p.Score)
		r.Total += p.Score
	}
	return r
}

// eventEffect is the audio-visual response to one simulation event
type eventEffect struct {
	sound      cfg.SoundID
	shake      float64
	shakeTicks int
	flash      bool
	banner     string
}

func effectFor(ev core.Event) eventEffect {
	switch ev.Kind {
	case core.EnemyDestroyed:
		return eventEffect{
			sound:      cfg.SoundExplosion,
			shake:      cfg.ScreenShake.EnemyKillIntensity,
			shakeTicks: cfg.ScreenShake.EnemyKillDuration,
		}
	case core.PlayerHit:
		return eventEffect{
			sound:      cfg.SoundPlayerHit,
			shake:      cfg.ScreenShake.PlayerHitIntensity,
			shakeTicks: cfg.ScreenShake.PlayerHitDuration,
			flash:      true,
		}
	case core.ExtraLife:
		return eventEffect{sound: cfg.SoundExtraLife, banner: "EXTRA LIFE"}
	case core.LevelUp:
		return eventEffect{sound: cfg.SoundLevelUp, banner: fmt.Sprintf("LEVEL %d", ev.Value)}
	case core.EnemyFired:
		return eventEffect{sound: cfg.SoundEnemyShoot}
	case core.PlayerFired:
		return eventEffect{sound: cfg.SoundShoot}
	case core.Invaded:
		return eventEffect{
			shake:      cfg.ScreenShake.InvasionIntensity,
			shakeTicks: cfg.ScreenShake.InvasionDuration,
		}
	case core.GameEnded:
		return eventEffect{sound: cfg.SoundGameOver, banner: "GAME OVER"}
	}
	return eventEffect{}
}

// HandleEvents plays the effects of a tick's events and starts the end
// delay when the game ended.
func HandleEvents(e *ecs.ECS, s *components.SessionData, report core.Report) {
	for _, ev := range report.Events {
		fx := effectFor(ev)
		if fx.sound != cfg.SoundNone {
			PlaySFX(e, fx.sound)
		}
		if fx.shakeTicks > 0 {
			TriggerScreenShake(e, fx.shake, fx.shakeTicks)
		}
		if fx.flash {
			TriggerFlash(e, ev.PlayerID)
		}
		if fx.banner != "" {
			SpawnBanner(e, fx.banner, cfg.Banner.TextColor)
		}
		if ev.Kind == core.GameEnded {
			s.EndTimer = max(cfg.Gameplay.GameOverDelay, 1)
			FadeOutMusic(e)
		}
	}
}
