package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScoreUpEffect spawns a "+1" popup that rises and fades
func CreateScoreUpEffect(ecs *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	effect := archetypes.ScoreUpEffect.Spawn(ecs)
	components.ScoreUpEffect.SetValue(effect, components.ScoreUpEffectData{
		Position: pos,
		Fade:     gween.New(1, 0, cfg.ScoreUp.FadeDuration, ease.Linear),
		Alpha:    1,
	})
	return effect
}

// CreateSpark spawns one charge particle
func CreateSpark(ecs *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	spark := archetypes.Spark.Spawn(ecs)
	components.Spark.SetValue(spark, components.SparkData{
		Position: pos,
		Fade:     gween.New(1, 0, cfg.ChargeEffect.Lifetime, ease.OutQuad),
		Alpha:    1,
	})
	return spark
}

// AddSquashRecovery springs entry's scale back to 1
func AddSquashRecovery(entry *donburi.Entry, from mgl64.Vec3) {
	if !entry.HasComponent(components.SquashRecovery) {
		entry.AddComponent(components.SquashRecovery)
	}
	components.SquashRecovery.SetValue(entry, components.SquashRecoveryData{
		From:     from,
		Progress: gween.New(0, 1, cfg.Player.SquashRecovery, ease.OutQuad),
	})
}
