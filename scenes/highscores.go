package scenes

import (
	"context"
	"errors"
	"image/color"
	"sync"

	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/logging"
	"github.com/P1NHE4D/SpaceInvadersClient/network"
	"github.com/P1NHE4D/SpaceInvadersClient/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// HighScoresScene shows the server leaderboards for both modes
type HighScoresScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	client       *network.HighScoreClient
	once         sync.Once

	mu        sync.Mutex
	single    []network.SpHighScore
	multi     []network.MpHighScore
	fetchErr  error
	fetchDone bool
}

func NewHighScoresScene(sc SceneChanger) *HighScoresScene {
	return &HighScoresScene{sceneChanger: sc}
}

func (s *HighScoresScene) Update() {
	s.once.Do(s.configure)
	s.ecsWorld.Update()

	// Apply fetch results on the main goroutine
	s.mu.Lock()
	if s.fetchDone {
		single, multi, err := s.single, s.multi, s.fetchErr
		s.fetchDone = false
		s.mu.Unlock()

		if err != nil {
			logging.Named("scenes").Warn("high score fetch failed", zap.Error(err))
		}
		systems.SetHighScores(s.ecsWorld, single, multi, err)
	} else {
		s.mu.Unlock()
	}

	if systems.GetOrCreateHighScores(s.ecsWorld).Back {
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
	}
}

func (s *HighScoresScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.ecsWorld == nil {
		return
	}
	s.ecsWorld.Draw(screen)
}

func (s *HighScoresScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	s.client = newScoreClient()

	s.ecsWorld.AddSystem(systems.UpdateAudio)
	s.ecsWorld.AddSystem(systems.UpdateInput)
	s.ecsWorld.AddSystem(systems.UpdateHighScores)
	s.ecsWorld.AddRenderer(cfg.Default, systems.DrawHighScores)

	systems.PlayMusic(s.ecsWorld, cfg.Sound.Music)

	s.fetchScores()
}

func (s *HighScoresScene) fetchScores() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Network.RequestTimeout)
		defer cancel()

		single, errSingle := s.client.SingleScores(ctx)
		multi, errMulti := s.client.MultiScores(ctx)

		s.mu.Lock()
		s.single = single
		s.multi = multi
		s.fetchErr = errors.Join(errSingle, errMulti)
		s.fetchDone = true
		s.mu.Unlock()
	}()
}
