package systems

import (
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// RemovalSystem destroys every entity tagged Dead. It runs first in the
// tick, so an entity tagged during tick N is gone before any decision
// system of tick N+1 can observe it.
type RemovalSystem struct {
	log *zap.Logger
}

func NewRemovalSystem(log *zap.Logger) *RemovalSystem {
	return &RemovalSystem{log: log}
}

func (s *RemovalSystem) Update(e *ecs.ECS) {
	var dead []donburi.Entity
	tags.Dead.Each(e.World, func(entry *donburi.Entry) {
		dead = append(dead, entry.Entity())
	})
	for _, entity := range dead {
		e.World.Remove(entity)
		s.log.Debug("entity destroyed", zap.Uint32("entity", uint32(entity.Id())))
	}
}
