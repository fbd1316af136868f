package scenes

import (
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/systems"
	"github.com/automoto/hopper/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene shows the final score over the frozen world of the run that just ended
type GameOverScene struct {
	sceneChanger SceneChanger
	play         *PlayScene
	gameOverUI   *ui.GameOverUI
}

// NewGameOverScene creates the overlay for play's ended run
func NewGameOverScene(sc SceneChanger, play *PlayScene) *GameOverScene {
	gs := &GameOverScene{sceneChanger: sc, play: play}
	gs.gameOverUI = ui.NewGameOverUI(
		func() { systems.RequestTransition(play.ecs, cfg.TransitionRestart) },
		func() { systems.RequestTransition(play.ecs, cfg.TransitionToMenu) },
	)
	gs.gameOverUI.SetScore(systems.GetScore(play.ecs).Value)
	return gs
}

func (gs *GameOverScene) Update() {
	// The play world keeps ticking so its session system applies restart / menu requests
	gs.play.ecs.Update()
	gs.gameOverUI.Update()

	if systems.GetSession(gs.play.ecs).State == cfg.StatePlaying {
		gs.sceneChanger.ChangeScene(gs.play)
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	gs.play.Draw(screen)
	gs.gameOverUI.UI.Draw(screen)
}
