package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances session time by one fixed tick
func UpdateClock(e *ecs.ECS) {
	clock := GetClock(e)
	clock.Delta = clock.Step
	clock.Now += clock.Delta
}

// UpdatePrepareJump counts down the guard that swallows input right after a run starts
func UpdatePrepareJump(e *ecs.ECS) {
	guard := GetPrepareJump(e)
	if guard.Remaining > 0 {
		guard.Remaining -= GetClock(e).Delta
	}
}
