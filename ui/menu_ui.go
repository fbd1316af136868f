package ui

import (
	cfg "github.com/automoto/hopper/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// MenuUI is the main menu: the title and a Start button
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()

	faces faces
}

// NewMenuUI creates the main menu
func NewMenuUI(onStart func()) *MenuUI {
	m := &MenuUI{OnStart: onStart}
	m.faces = loadFaces()
	m.buildUI()
	return m
}

func (m *MenuUI) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := centeredColumn()
	column.AddChild(centeredLabel(cfg.Menu.Title, &m.faces.title, cfg.Menu.TitleColor))
	column.AddChild(newButton(
		cfg.Menu.StartLabel,
		&m.faces.normal,
		buttonImage(cfg.Menu.ButtonIdle, cfg.Menu.ButtonHover, cfg.Menu.ButtonPressed),
		cfg.Menu.TextColor,
		func() {
			if m.OnStart != nil {
				m.OnStart()
			}
		},
	))
	root.AddChild(column)

	m.UI = &ebitenui.UI{
		Container: root,
	}
}

func (m *MenuUI) Update() {
	m.UI.Update()
}
