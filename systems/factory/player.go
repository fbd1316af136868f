package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at its rest position
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Transform.SetValue(player, components.NewTransform(cfg.Player.InitialPosition))
	return player
}
