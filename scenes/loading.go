package scenes

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"sync"

	"github.com/P1NHE4D/SpaceInvadersClient/assets"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/logging"
	"github.com/P1NHE4D/SpaceInvadersClient/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// LoadingScene preloads every manifest resource off the main goroutine and
// moves on once they are all in memory.
type LoadingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	cancel       context.CancelFunc

	mu       sync.Mutex
	loadDone bool
	loadErr  error
	failed   error
}

func NewLoadingScene(sc SceneChanger) *LoadingScene {
	return &LoadingScene{sceneChanger: sc}
}

func (ls *LoadingScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()

	if ls.failed != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			os.Exit(1)
		}
		return
	}

	done, total := assets.Loader().Progress()
	systems.SetLoadingProgress(ls.ecs, done, total, nil)

	// Apply load results on the main goroutine
	ls.mu.Lock()
	finished, err := ls.loadDone, ls.loadErr
	ls.mu.Unlock()
	if !finished {
		return
	}

	if err == nil {
		err = ls.finish()
	}
	if err != nil {
		logging.Named("loading").Error("assets failed to load", zap.Error(err))
		ls.failed = err
		systems.SetLoadingProgress(ls.ecs, done, total, err)
		return
	}

	logging.Named("loading").Info("assets loaded", zap.Int("resources", total))
	if cfg.Debug.SkipMenu {
		ls.sceneChanger.ChangeScene(NewInvadersScene(ls.sceneChanger, false))
		return
	}
	ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger))
}

// finish does the GPU and audio work that has to wait for the raw resources
func (ls *LoadingScene) finish() error {
	if err := assets.LoadShaders(); err != nil {
		return fmt.Errorf("load shaders: %w", err)
	}
	systems.PreloadAllSFX()
	return nil
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LoadingScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())
	ls.ecs.AddSystem(systems.UpdateLoading)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawLoading)

	ctx, cancel := context.WithCancel(context.Background())
	ls.cancel = cancel
	go ls.preload(ctx)
}

func (ls *LoadingScene) preload(ctx context.Context) {
	defer ls.cancel()

	err := func() error {
		m, err := assets.Manifest()
		if err != nil {
			return err
		}
		return assets.Loader().Preload(ctx, m.Resources)
	}()

	ls.mu.Lock()
	ls.loadDone = true
	ls.loadErr = err
	ls.mu.Unlock()
}
