package archetypes

import (
	"github.com/bastiongame/bastion/components"
	cfg "github.com/bastiongame/bastion/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Enemy = newArchetype(
		components.Enemy,
		components.Stats,
		components.Position,
		components.Velocity,
		components.Sprite,
		components.ClassName,
	)
	PlayerUnit = newArchetype(
		components.Player,
		components.Stats,
		components.Position,
		components.Sprite,
		components.ClassName,
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
