package components

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/hopper/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Shape is the closed set of platform footprints
type Shape int

const (
	ShapeBox Shape = iota
	ShapeCylinder
	ShapeCount // Must be last - used for random selection
)

func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "Box"
	case ShapeCylinder:
		return "Cylinder"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// HalfExtent is the half side of the square bound the hit tests use.
// The Cylinder uses its radius as a square bound, not a circle.
func (s Shape) HalfExtent() float64 {
	switch s {
	case ShapeBox:
		return cfg.Platform.BoxSize / 2
	case ShapeCylinder:
		return cfg.Platform.CylinderRadius
	}
	panic(fmt.Sprintf("unknown platform shape %d", int(s)))
}

// IsLandedOn reports whether landingPos lies strictly inside the footprint of a
// platform centred at platformPos. Y is ignored.
func (s Shape) IsLandedOn(platformPos, landingPos mgl64.Vec3) bool {
	switch s {
	case ShapeBox:
		half := cfg.Platform.BoxSize / 2
		return withinSquare(platformPos, landingPos, half)
	case ShapeCylinder:
		return withinSquare(platformPos, landingPos, cfg.Platform.CylinderRadius)
	}
	panic(fmt.Sprintf("unknown platform shape %d", int(s)))
}

// IsTouched is IsLandedOn with the footprint inflated by probeRadius on every side.
func (s Shape) IsTouched(platformPos, landingPos mgl64.Vec3, probeRadius float64) bool {
	switch s {
	case ShapeBox:
		half := cfg.Platform.BoxSize / 2
		return withinSquare(platformPos, landingPos, half+probeRadius)
	case ShapeCylinder:
		return withinSquare(platformPos, landingPos, cfg.Platform.CylinderRadius+probeRadius)
	}
	panic(fmt.Sprintf("unknown platform shape %d", int(s)))
}

// withinSquare tests both horizontal axes independently; ties count as outside.
func withinSquare(center, p mgl64.Vec3, half float64) bool {
	return math.Abs(p.X()-center.X()) < half && math.Abs(p.Z()-center.Z()) < half
}

// PlatformData describes one platform the player can land on
type PlatformData struct {
	Shape Shape
	Color color.RGBA
}

var Platform = donburi.NewComponentType[PlatformData]()
