package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFall drives the failure animation to game over
func UpdateFall(e *ecs.ECS) {
	fall := GetFall(e)
	if fall.Completed {
		return
	}

	if !fall.SoundPlayed {
		PlaySFX(e, cfg.SoundFall)
		fall.SoundPlayed = true
	}

	dt := GetClock(e).Delta
	transform := components.Transform.Get(MustPlayer(e.World))

	switch fall.Kind {
	case components.FallStraight:
		descend(e, fall, transform, cfg.Fall.StraightFloor, dt)
	case components.FallTilt:
		if fall.TiltCompleted {
			descend(e, fall, transform, cfg.Fall.TiltFloor, dt)
			return
		}

		pivot := mgl64.Vec3{
			fall.Origin.X(),
			cfg.Player.InitialPosition.Y() - cfg.Fall.TiltPivotDrop,
			fall.Origin.Z(),
		}
		if transform.Position.Y() < pivot.Y() {
			fall.TiltCompleted = true
			return
		}
		transform.RotateAround(pivot, mgl64.QuatRotate(cfg.Fall.TiltAngularRad*dt, fall.Direction))
	}
}

func descend(e *ecs.ECS, fall *components.FallData, transform *components.TransformData, floor, dt float64) {
	if transform.Position.Y() < floor {
		fall.Completed = true
		EndSession(e)
		return
	}
	transform.Position[1] -= cfg.Fall.DescentRate * dt
}
