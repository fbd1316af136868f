package archetypes

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Transform,
	)
	// Role tags (CurrentPlatform / NextPlatform) are passed to Spawn
	Platform = newArchetype(
		tags.Platform,
		components.Transform,
		components.Platform,
	)
	Camera = newArchetype(
		components.Camera,
	)
	ScoreUpEffect = newArchetype(
		tags.ScoreUpEffect,
		components.ScoreUpEffect,
	)
	Spark = newArchetype(
		tags.Spark,
		components.Spark,
	)
	// Session holds the per-world singletons
	Session = newArchetype(
		components.Session,
		components.Clock,
		components.Random,
		components.Charge,
		components.PrepareJump,
		components.Jump,
		components.Fall,
		components.Score,
		components.ScoreUpQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
