package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the eased follow camera
type CameraData struct {
	Position  mgl64.Vec3
	Step      mgl64.Vec3 // applied every frame until within one step of the target
	PlayerPos mgl64.Vec3 // player position when Step was last recomputed
}

var Camera = donburi.NewComponentType[CameraData]()
