package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward its offset from the player while the player is at rest
func UpdateCamera(e *ecs.ECS) {
	if !GetJump(e).Completed || !GetFall(e).Completed {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	player := components.Transform.Get(MustPlayer(e.World)).Position

	target := cfg.Camera.InitialOffset.Add(player)

	// Recompute the step only when the player has actually moved
	if camera.PlayerPos.Sub(player).Len() > cfg.Camera.RecomputeThreshold {
		camera.Step = target.Sub(camera.Position).Mul(cfg.Camera.StepFraction)
		camera.PlayerPos = player
	}

	if camera.Position.Sub(target).Len() > camera.Step.Len() {
		camera.Position = camera.Position.Add(camera.Step)
	}
}
