package main

import (
	"github.com/bastiongame/bastion/components"
	"github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/events"
	"github.com/bastiongame/bastion/gamemath"
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
)

// Scripted versions of the external collaborators, good enough to drive the
// decision core end to end in a headless run.

var (
	meleeEnemyQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Enemy, components.Position),
		filter.Contains(tags.MeleeUnit),
	))
	playerPosQuery = donburi.NewQuery(filter.Contains(
		components.Player, components.Position,
	))
	moverQuery = donburi.NewQuery(filter.Contains(
		components.Position, components.Velocity,
	))
	blockedQuery = donburi.NewQuery(filter.Contains(components.BlockedBy))
)

// detectEngagements pins each melee enemy to the first player unit inside
// the block radius, and drops engagements that went stale.
func detectEngagements(e *ecs.ECS) {
	radius := config.Sim.BlockRadius

	blockedQuery.Each(e.World, func(entry *donburi.Entry) {
		blocker := components.BlockedBy.Get(entry).Blocker
		if !e.World.Valid(blocker) || outOfRadius(e, entry, blocker, radius) {
			entry.RemoveComponent(components.BlockedBy)
		}
	})

	meleeEnemyQuery.Each(e.World, func(enemyEntry *donburi.Entry) {
		if enemyEntry.HasComponent(components.BlockedBy) {
			return
		}
		enemyPos := components.Position.Get(enemyEntry).Point
		playerPosQuery.Each(e.World, func(playerEntry *donburi.Entry) {
			if enemyEntry.HasComponent(components.BlockedBy) {
				return
			}
			playerPos := components.Position.Get(playerEntry).Point
			if gamemath.DistanceSquared(enemyPos, playerPos) <= radius*radius {
				enemyEntry.AddComponent(components.BlockedBy)
				components.BlockedBy.SetValue(enemyEntry, components.BlockedByData{
					Blocker: playerEntry.Entity(),
				})
			}
		})
	})
}

func outOfRadius(e *ecs.ECS, entry *donburi.Entry, other donburi.Entity, radius float64) bool {
	otherEntry := e.World.Entry(other)
	if !entry.HasComponent(components.Position) || !otherEntry.HasComponent(components.Position) {
		return true
	}
	a := components.Position.Get(entry).Point
	b := components.Position.Get(otherEntry).Point
	return gamemath.DistanceSquared(a, b) > radius*radius
}

// integrateMovement applies velocity to position. Locked and blocked units
// hold their ground.
func integrateMovement(e *ecs.ECS) {
	dt := config.Sim.DT()
	moverQuery.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(tags.ActionLock) || entry.HasComponent(components.BlockedBy) {
			return
		}
		vel := components.Velocity.Get(entry).Velocity
		pos := components.Position.Get(entry)
		pos.Point = pos.Point.Add(vel.Scale(dt))
	})
}

// scriptedPlayback completes every non-looping clip after a fixed number of
// ticks and publishes exactly one AnimationFinished for it.
type scriptedPlayback struct {
	remaining map[donburi.Entity]int
	log       *zap.Logger
}

const clipTicks = 30

func newScriptedPlayback(log *zap.Logger) *scriptedPlayback {
	return &scriptedPlayback{
		remaining: make(map[donburi.Entity]int),
		log:       log,
	}
}

func (p *scriptedPlayback) Subscribe(w donburi.World) {
	events.PlayAnimationEvent.Subscribe(w, func(w donburi.World, event events.PlayAnimation) {
		p.log.Debug("play animation",
			zap.Uint32("entity", uint32(event.Entity.Id())),
			zap.String("clip", string(event.Animation)),
			zap.Bool("loop", event.Loop))
		if event.Loop {
			delete(p.remaining, event.Entity)
			return
		}
		p.remaining[event.Entity] = clipTicks
	})
}

func (p *scriptedPlayback) Update(e *ecs.ECS) {
	for entity, ticks := range p.remaining {
		if !e.World.Valid(entity) {
			delete(p.remaining, entity)
			continue
		}
		ticks--
		if ticks <= 0 {
			delete(p.remaining, entity)
			events.AnimationFinishedEvent.Publish(e.World, events.AnimationFinished{Entity: entity})
			continue
		}
		p.remaining[entity] = ticks
	}
}
