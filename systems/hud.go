package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawScoreboard renders the run's score in the top-left corner
func DrawScoreboard(e *ecs.ECS, screen *ebiten.Image) {
	if GetSession(e).State == cfg.StateMainMenu {
		return
	}
	label := fmt.Sprintf("Score: %d", GetScore(e).Value)
	text.Draw(screen, label, fonts.Score.Get(), cfg.Render.ScoreboardX, cfg.Render.ScoreboardY, cfg.Render.ScoreColor)
}

// DrawScorePopups renders the floating "+1" labels at their projected positions
func DrawScorePopups(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraViewport(e, screen)
	if !ok {
		return
	}

	face := fonts.Popup.Get()
	const label = "+1"
	width := font.MeasureString(face, label).Ceil()

	components.ScoreUpEffect.Each(e.World, func(entry *donburi.Entry) {
		popup := components.ScoreUpEffect.Get(entry)
		x, y, ok := v.project(popup.Position)
		if !ok {
			return
		}
		c := cfg.ScoreUp.Color
		clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * popup.Alpha)}
		text.Draw(screen, label, face, int(x)-width/2, int(y), clr)
	})
}
