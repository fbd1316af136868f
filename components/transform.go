package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the world transform shared by the player, platforms and the renderer
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()

// NewTransform returns an unrotated, unscaled transform at pos
func NewTransform(pos mgl64.Vec3) TransformData {
	return TransformData{
		Position: pos,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// TranslateAround moves the position around point by q. Orientation is untouched.
func (t *TransformData) TranslateAround(point mgl64.Vec3, q mgl64.Quat) {
	t.Position = point.Add(q.Rotate(t.Position.Sub(point)))
}

// RotateAround moves the position around point by q and applies q to the orientation.
func (t *TransformData) RotateAround(point mgl64.Vec3, q mgl64.Quat) {
	t.TranslateAround(point, q)
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// RotateLocalAxis spins the orientation about an axis given in local space.
func (t *TransformData) RotateLocalAxis(axis mgl64.Vec3, angle float64) {
	t.Rotation = t.Rotation.Mul(mgl64.QuatRotate(angle, axis)).Normalize()
}
