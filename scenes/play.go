package scenes

import (
	"sync"

	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayScene runs one world for as many runs as the player restarts
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlayScene creates a new play scene; the first run starts on its first update
func NewPlayScene(sc SceneChanger) *PlayScene {
	return &PlayScene{sceneChanger: sc}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsGameOver(ps.ecs) {
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps))
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.GroundColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	toMenu := func() {
		systems.StopAllAudio()
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
	}

	// Systems that always run
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.NewUpdateSession(toMenu))

	// Gameplay systems, in resolution order
	ecs.AddSystem(systems.WithPlaying(systems.UpdatePrepareJump))
	ecs.AddSystem(systems.WithPlaying(systems.UpdatePlatforms))
	ecs.AddSystem(systems.WithPlaying(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPlaying(systems.UpdateJump))
	ecs.AddSystem(systems.WithPlaying(systems.UpdateJumpAnimation))
	ecs.AddSystem(systems.WithPlaying(systems.UpdateFall))

	// Effects keep fading under the game over overlay
	ecs.AddSystem(systems.WithRun(systems.UpdateChargeVisuals))
	ecs.AddSystem(systems.WithRun(systems.UpdateScorePopups))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawScorePopups)
	ecs.AddRenderer(cfg.Default, systems.DrawScoreboard)

	ps.ecs = ecs

	systems.RequestTransition(ps.ecs, cfg.TransitionStart)
}
