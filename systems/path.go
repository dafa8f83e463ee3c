package systems

import (
	"math/rand"

	"github.com/bastiongame/bastion/components"
	cfg "github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/events"
	"github.com/bastiongame/bastion/leveldata"
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
)

var pathQuery = donburi.NewQuery(filter.Contains(
	components.Enemy,
	components.Position,
	components.Velocity,
))

// PathSystem advances enemies along the waypoint graph. When an enemy gets
// within the arrival threshold of its waypoint it either branches to a
// uniformly random outgoing edge, or, at a childless node, is marked Dead
// and EnemyArriveHome fires.
type PathSystem struct {
	graph leveldata.WaypointGraph
	rng   *rand.Rand
	log   *zap.Logger
}

func NewPathSystem(graph leveldata.WaypointGraph, rng *rand.Rand, log *zap.Logger) *PathSystem {
	return &PathSystem{graph: graph, rng: rng, log: log}
}

func (s *PathSystem) Update(e *ecs.ECS) {
	pathQuery.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		pos := components.Position.Get(entry).Point

		node := s.mustNode(entry, enemy.TargetWaypointID)
		direction := node.Position.Sub(pos)

		if direction.Length() < cfg.Sim.ArrivalThreshold {
			if len(node.NextIDs) == 0 {
				s.log.Info("enemy reached home",
					zap.Uint32("entity", uint32(entry.Entity().Id())),
					zap.Int("waypoint", node.ID))
				events.EnemyArriveHomeEvent.Publish(e.World, events.EnemyArriveHome{})
				if !entry.HasComponent(tags.Dead) {
					entry.AddComponent(tags.Dead)
				}
				return
			}

			// Branch choice is the only non-determinism in the core:
			// one outgoing edge, sampled uniformly per arrival.
			enemy.TargetWaypointID = node.NextIDs[s.rng.Intn(len(node.NextIDs))]
			node = s.mustNode(entry, enemy.TargetWaypointID)
			direction = node.Position.Sub(pos)
		}

		vel := components.Velocity.Get(entry)
		vel.Velocity = direction.Normalized().Scale(enemy.Speed)
	})
}

// mustNode resolves a waypoint id. An unknown id means malformed level data;
// continuing would steer the enemy toward an undefined position, so this
// fails loudly instead.
func (s *PathSystem) mustNode(entry *donburi.Entry, id int) leveldata.WaypointNode {
	node, ok := s.graph.Node(id)
	if !ok {
		s.log.Panic("unknown waypoint id",
			zap.Int("waypoint", id),
			zap.Uint32("entity", uint32(entry.Entity().Id())))
	}
	return node
}
