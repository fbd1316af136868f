package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera places the camera at its offset from the player's starting point
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position:  cfg.Camera.InitialOffset,
		PlayerPos: cfg.Player.InitialPosition,
	})
	return camera
}
