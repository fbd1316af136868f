package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScoreUpEffectData is a floating "+1" anchored in world space
type ScoreUpEffectData struct {
	Position mgl64.Vec3
	Fade     *gween.Tween // alpha 1 -> 0
	Alpha    float32
}

var ScoreUpEffect = donburi.NewComponentType[ScoreUpEffectData]()

// SparkData is one charge particle
type SparkData struct {
	Position mgl64.Vec3
	Fade     *gween.Tween // alpha 1 -> 0 over the spark lifetime
	Alpha    float32
}

var Spark = donburi.NewComponentType[SparkData]()

// SquashRecoveryData springs a squashed entity back to unit scale
type SquashRecoveryData struct {
	From     mgl64.Vec3
	Progress *gween.Tween // 0 -> 1
}

var SquashRecovery = donburi.NewComponentType[SquashRecoveryData]()
