package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/systems/factory"
	"github.com/automoto/hopper/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateChargeVisuals squashes the player and its platform while a charge is
// held and emits sparks around the player
func UpdateChargeVisuals(e *ecs.ECS) {
	charge := GetCharge(e)
	dt := GetClock(e).Delta

	if charge.Charging {
		squashWhileCharging(e, dt)
		charge.SparkIn -= dt
		if charge.SparkIn <= 0 {
			spawnSparks(e)
			charge.SparkIn += cfg.ChargeEffect.SpawnInterval
		}
	} else {
		startSquashRecovery(e)
	}

	updateSquashRecovery(e, float32(dt))
	updateSparks(e, float32(dt))
}

func squashWhileCharging(e *ecs.ECS, dt float64) {
	playerEntry := MustPlayer(e.World)
	platformEntry := MustCurrentPlatform(e.World)
	for _, entry := range []*donburi.Entry{playerEntry, platformEntry} {
		if entry.HasComponent(components.SquashRecovery) {
			entry.RemoveComponent(components.SquashRecovery)
		}
	}

	player := components.Transform.Get(playerEntry)
	player.Scale = mgl64.Vec3{
		math.Min(player.Scale.X()+cfg.Player.SquashGrowRate*dt, cfg.Player.MaxSquashXZ),
		math.Max(player.Scale.Y()-cfg.Player.SquashShrinkRate*dt, cfg.Player.MinSquashY),
		math.Min(player.Scale.Z()+cfg.Player.SquashGrowRate*dt, cfg.Player.MaxSquashXZ),
	}

	platform := components.Transform.Get(platformEntry)
	platform.Scale[1] = math.Max(platform.Scale.Y()-cfg.Platform.SquashShrinkRate*dt, cfg.Platform.MinSquashY)
}

// startSquashRecovery attaches a recovery tween to anything left squashed
func startSquashRecovery(e *ecs.ECS) {
	var squashed []*donburi.Entry
	collectSquashed := func(entry *donburi.Entry) {
		if entry.HasComponent(components.SquashRecovery) {
			return
		}
		if components.Transform.Get(entry).Scale != (mgl64.Vec3{1, 1, 1}) {
			squashed = append(squashed, entry)
		}
	}
	tags.Player.Each(e.World, collectSquashed)
	tags.Platform.Each(e.World, collectSquashed)

	for _, entry := range squashed {
		factory.AddSquashRecovery(entry, components.Transform.Get(entry).Scale)
	}
}

func updateSquashRecovery(e *ecs.ECS, dt float32) {
	var done []*donburi.Entry
	one := mgl64.Vec3{1, 1, 1}

	components.SquashRecovery.Each(e.World, func(entry *donburi.Entry) {
		recovery := components.SquashRecovery.Get(entry)
		transform := components.Transform.Get(entry)

		progress, finished := recovery.Progress.Update(dt)
		if finished {
			transform.Scale = one
			done = append(done, entry)
			return
		}
		transform.Scale = recovery.From.Add(one.Sub(recovery.From).Mul(float64(progress)))
	})

	for _, entry := range done {
		entry.RemoveComponent(components.SquashRecovery)
	}
}

func spawnSparks(e *ecs.ECS) {
	center := components.Transform.Get(MustPlayer(e.World)).Position
	for i := 0; i < cfg.ChargeEffect.SparksPerTick; i++ {
		factory.CreateSpark(e, center.Add(randomInSphere(cfg.ChargeEffect.Radius)))
	}
}

// randomInSphere samples a point uniformly inside a sphere of the given radius.
// Sparks are cosmetic and use the global source so platform layout stays reproducible.
func randomInSphere(radius float64) mgl64.Vec3 {
	for {
		p := mgl64.Vec3{rand.Float64()*2 - 1, rand.Float64()*2 - 1, rand.Float64()*2 - 1}
		if p.Len() <= 1 {
			return p.Mul(radius)
		}
	}
}

func updateSparks(e *ecs.ECS, dt float32) {
	var expired []*donburi.Entry
	components.Spark.Each(e.World, func(entry *donburi.Entry) {
		spark := components.Spark.Get(entry)
		alpha, finished := spark.Fade.Update(dt)
		spark.Alpha = alpha
		if finished {
			expired = append(expired, entry)
		}
	})

	for _, entry := range expired {
		e.World.Remove(entry.Entity())
	}
}
