package systems

import (
	cfg "github.com/automoto/hopper/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the main menu system; the select action starts a run
func NewUpdateMenu(onStart func()) ecs.System {
	return func(e *ecs.ECS) {
		if GetAction(getOrCreateInput(e), cfg.ActionMenuSelect).JustPressed && onStart != nil {
			onStart()
		}
	}
}
