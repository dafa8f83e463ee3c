package systems

import (
	"github.com/bastiongame/bastion/components"
	cfg "github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/events"
	"github.com/bastiongame/bastion/gamemath"
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	// Blocked enemies swing at their blocker regardless of any locked
	// target.
	blockedEnemyQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Enemy, components.BlockedBy, components.Stats),
		filter.Contains(tags.AttackReady),
	))

	rangedEnemyQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Enemy, components.Target, components.Stats),
		filter.Contains(tags.AttackReady),
		filter.Not(filter.Contains(components.BlockedBy)),
	))

	readyPlayerQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Player, components.Target, components.Stats),
		filter.Contains(tags.AttackReady),
	))
)

// StartAttacks converts attack readiness into actions. The three eligibility
// groups are mutually exclusive and each is evaluated once per tick.
// Dispatch always clears AttackReady in the same step that sets ActionLock,
// so no entity ever holds both from the same dispatch.
func StartAttacks(e *ecs.ECS) {
	// Blocked enemies: melee attack.
	blockedEnemyQuery.Each(e.World, func(entry *donburi.Entry) {
		lockAndReset(entry)
		events.PlayAnimationEvent.Publish(e.World, events.PlayAnimation{
			Entity:    entry.Entity(),
			Animation: cfg.AnimAttack,
		})
	})

	// Unblocked enemies with a locked target: ranged attack. Movement
	// stops for the shot.
	rangedEnemyQuery.Each(e.World, func(entry *donburi.Entry) {
		lockAndReset(entry)
		if entry.HasComponent(components.Velocity) {
			components.Velocity.Get(entry).Velocity = gamemath.Vector{}
		}
		events.PlayAnimationEvent.Publish(e.World, events.PlayAnimation{
			Entity:    entry.Entity(),
			Animation: cfg.AnimRangedAttack,
		})
	})

	// Player units: attack or heal. No ActionLock here — deployed units
	// keep acting through their animation.
	readyPlayerQuery.Each(e.World, func(entry *donburi.Entry) {
		entry.RemoveComponent(tags.AttackReady)
		components.Stats.Get(entry).AtkTimer = 0

		anim := cfg.AnimAttack
		if entry.HasComponent(tags.Healer) {
			anim = cfg.AnimHeal
		}
		events.PlayAnimationEvent.Publish(e.World, events.PlayAnimation{
			Entity:    entry.Entity(),
			Animation: anim,
		})
	})
}

func lockAndReset(entry *donburi.Entry) {
	if !entry.HasComponent(tags.ActionLock) {
		entry.AddComponent(tags.ActionLock)
	}
	entry.RemoveComponent(tags.AttackReady)
	components.Stats.Get(entry).AtkTimer = 0
}
