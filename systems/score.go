package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScorePopups turns queued score events into "+1" popups once the
// player has landed, then rises and fades the live ones
func UpdateScorePopups(e *ecs.ECS) {
	if GetJump(e).Completed {
		for _, ev := range GetScoreUpQueue(e).Drain() {
			factory.CreateScoreUpEffect(e, ev.Position)
		}
	}

	dt := GetClock(e).Delta
	limit := cfg.Player.InitialPosition.Y() + cfg.ScoreUp.RiseLimit

	var expired []*donburi.Entry
	components.ScoreUpEffect.Each(e.World, func(entry *donburi.Entry) {
		popup := components.ScoreUpEffect.Get(entry)
		popup.Position[1] += cfg.ScoreUp.RiseSpeed * dt
		popup.Alpha, _ = popup.Fade.Update(float32(dt))

		if popup.Position.Y() > limit {
			expired = append(expired, entry)
		}
	})

	for _, entry := range expired {
		e.World.Remove(entry.Entity())
	}
}
