package systems

import (
	"image/color"
	"math/rand"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/systems/factory"
	"github.com/automoto/hopper/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnFirstPlatform places the starting platform under the player
func SpawnFirstPlatform(e *ecs.ECS) *donburi.Entry {
	rng := GetRandom(e)
	return factory.CreatePlatform(e, cfg.Platform.FirstPosition, randomShape(rng), randomColor(rng), tags.CurrentPlatform)
}

// UpdatePlatforms keeps a Next platform ahead of the player
func UpdatePlatforms(e *ecs.ECS) {
	EnsureNextPlatform(e)
}

// EnsureNextPlatform spawns a Next platform when there is none. It returns the
// Next platform and whether it was created by this call.
func EnsureNextPlatform(e *ecs.ECS) (*donburi.Entry, bool) {
	if next := MustNextPlatform(e.World); next != nil {
		return next, false
	}

	current := components.Transform.Get(MustCurrentPlatform(e.World)).Position
	rng := GetRandom(e)

	distance := cfg.Platform.MinDistance + rng.Float64()*(cfg.Platform.MaxDistance-cfg.Platform.MinDistance)
	axis := components.AxisX
	if rng.Intn(2) == 1 {
		axis = components.AxisZ
	}
	pos := current.Add(axis.Direction().Mul(distance))
	pos[1] = cfg.Platform.Height

	return factory.CreatePlatform(e, pos, randomShape(rng), randomColor(rng), tags.NextPlatform), true
}

// PromoteNextPlatform makes landed the Current platform. The previous Current
// keeps its entity but loses its role.
func PromoteNextPlatform(e *ecs.ECS, landed *donburi.Entry) {
	previous := MustCurrentPlatform(e.World)

	previous.RemoveComponent(tags.CurrentPlatform)
	landed.RemoveComponent(tags.NextPlatform)
	landed.AddComponent(tags.CurrentPlatform)
}

// ClearPlatforms destroys every platform
func ClearPlatforms(e *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		e.World.Remove(entry.Entity())
	}
}

// PlatformSnapshot is the geometry the jump resolver needs from a platform
type PlatformSnapshot struct {
	Position mgl64.Vec3
	Shape    components.Shape
}

func snapshot(entry *donburi.Entry) PlatformSnapshot {
	return PlatformSnapshot{
		Position: components.Transform.Get(entry).Position,
		Shape:    components.Platform.Get(entry).Shape,
	}
}

func randomShape(rng *rand.Rand) components.Shape {
	return components.Shape(rng.Intn(int(components.ShapeCount)))
}

func randomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}
