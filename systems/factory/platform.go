package factory

import (
	"image/color"

	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a platform; role is tags.CurrentPlatform or tags.NextPlatform
func CreatePlatform(ecs *ecs.ECS, pos mgl64.Vec3, shape components.Shape, clr color.RGBA, role donburi.IComponentType) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs, role)
	components.Transform.SetValue(platform, components.NewTransform(pos))
	components.Platform.SetValue(platform, components.PlatformData{
		Shape: shape,
		Color: clr,
	})
	return platform
}
