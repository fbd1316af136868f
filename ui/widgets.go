package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// faces holds the text faces the screens share
type faces struct {
	title  text.Face
	normal text.Face
}

func loadFaces() faces {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	return faces{
		title: &text.GoTextFace{
			Source: fontSource,
			Size:   36,
		},
		normal: &text.GoTextFace{
			Source: fontSource,
			Size:   16,
		},
	}
}

func buttonImage(idle, hover, pressed color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(idle),
		Hover:   image.NewNineSliceColor(hover),
		Pressed: image.NewNineSliceColor(pressed),
	}
}

func newButton(label string, face *text.Face, img *widget.ButtonImage, textColor color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 36),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:    textColor,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// centeredColumn is a vertical row layout anchored to the middle of its parent
func centeredColumn() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

func centeredLabel(label string, face *text.Face, clr color.RGBA) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, face, &widget.LabelColor{
			Idle: clr,
		}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		),
	)
}
