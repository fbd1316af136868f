package ui

import (
	"fmt"

	cfg "github.com/automoto/hopper/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// GameOverUI is drawn over the frozen world once the run ends
type GameOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRestart func()
	OnMenu    func()

	scoreLabel *widget.Label
	faces      faces
}

// NewGameOverUI creates the game over overlay
func NewGameOverUI(onRestart, onMenu func()) *GameOverUI {
	g := &GameOverUI{
		OnRestart: onRestart,
		OnMenu:    onMenu,
	}
	g.faces = loadFaces()
	g.buildUI()
	return g
}

func (g *GameOverUI) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	img := buttonImage(cfg.GameOver.ButtonIdle, cfg.GameOver.ButtonHover, cfg.GameOver.ButtonPressed)

	column := centeredColumn()
	column.AddChild(centeredLabel(cfg.GameOver.Title, &g.faces.title, cfg.GameOver.TitleColor))

	g.scoreLabel = centeredLabel("", &g.faces.normal, cfg.GameOver.TextColor)
	column.AddChild(g.scoreLabel)

	column.AddChild(newButton(cfg.GameOver.RestartLabel, &g.faces.normal, img, cfg.GameOver.TextColor, func() {
		if g.OnRestart != nil {
			g.OnRestart()
		}
	}))
	column.AddChild(newButton(cfg.GameOver.MenuLabel, &g.faces.normal, img, cfg.GameOver.TextColor, func() {
		if g.OnMenu != nil {
			g.OnMenu()
		}
	}))
	root.AddChild(column)

	g.UI = &ebitenui.UI{
		Container: root,
	}
}

// SetScore updates the final score line
func (g *GameOverUI) SetScore(score int) {
	g.scoreLabel.Label = fmt.Sprintf("Score: %d", score)
}

func (g *GameOverUI) Update() {
	g.UI.Update()
}
