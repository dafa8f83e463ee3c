package systems

import (
	"github.com/bastiongame/bastion/components"
	cfg "github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/gamemath"
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	// Units holding a target, whatever their role. Validation runs on all
	// of them before any acquisition pass.
	lockedQuery = donburi.NewQuery(filter.Contains(
		components.Position,
		components.Stats,
		components.Target,
	))

	// Player attack units still looking for a target. Healers pick targets
	// in their own pass.
	idlePlayerQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Position, components.Stats, components.Player),
		filter.Not(filter.Contains(components.Target)),
		filter.Not(filter.Contains(tags.Healer)),
	))

	enemyQuery = donburi.NewQuery(filter.Contains(
		components.Position,
		components.Enemy,
	))

	// Ranged enemies looking for a target. Blocked enemies are engaged in
	// melee and handled through BlockedBy instead.
	idleRangedEnemyQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Position, components.Stats, components.Enemy),
		filter.Contains(tags.RangedUnit),
		filter.Not(filter.Contains(components.Target)),
		filter.Not(filter.Contains(components.BlockedBy)),
	))

	playerQuery = donburi.NewQuery(filter.Contains(
		components.Position,
		components.Player,
	))

	healerQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Position, components.Stats),
		filter.Contains(tags.Healer),
	))

	injuredAllyQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Position, components.Stats, components.Player),
		filter.Contains(tags.Injured),
	))
)

// UpdateTargets runs the four targeting passes: validation first, then
// player->enemy acquisition, ranged-enemy->player acquisition, and healer
// retargeting.
func UpdateTargets(e *ecs.ECS) {
	validateTargets(e)
	acquirePlayerTargets(e)
	acquireRangedEnemyTargets(e)
	updateHealerTargets(e)
}

// validateTargets removes every target reference that no longer holds: the
// referent was destroyed, lost its position, or left attack range.
func validateTargets(e *ecs.ECS) {
	lockedQuery.Each(e.World, func(entry *donburi.Entry) {
		target := components.Target.Get(entry).Entity

		if !e.World.Valid(target) {
			entry.RemoveComponent(components.Target)
			return
		}
		targetEntry := e.World.Entry(target)
		if !targetEntry.HasComponent(components.Position) {
			entry.RemoveComponent(components.Target)
			return
		}

		selfPos := components.Position.Get(entry).Point
		targetPos := components.Position.Get(targetEntry).Point
		if !inRange(components.Stats.Get(entry), selfPos, targetPos) {
			entry.RemoveComponent(components.Target)
		}
	})
}

// acquirePlayerTargets assigns each idle player attack unit the first enemy
// found within range. Selection is first-match in iteration order, not
// nearest; one lock per unit per tick.
func acquirePlayerTargets(e *ecs.ECS) {
	idlePlayerQuery.Each(e.World, func(playerEntry *donburi.Entry) {
		playerPos := components.Position.Get(playerEntry).Point
		stats := components.Stats.Get(playerEntry)

		if enemy, ok := firstInRange(e, enemyQuery, stats, playerPos); ok {
			playerEntry.AddComponent(components.Target)
			components.Target.SetValue(playerEntry, components.TargetData{Entity: enemy})
		}
	})
}

// acquireRangedEnemyTargets is the symmetric first-match pass for unblocked
// ranged enemies hunting player units.
func acquireRangedEnemyTargets(e *ecs.ECS) {
	idleRangedEnemyQuery.Each(e.World, func(enemyEntry *donburi.Entry) {
		enemyPos := components.Position.Get(enemyEntry).Point
		stats := components.Stats.Get(enemyEntry)

		if player, ok := firstInRange(e, playerQuery, stats, enemyPos); ok {
			enemyEntry.AddComponent(components.Target)
			components.Target.SetValue(enemyEntry, components.TargetData{Entity: player})
		}
	})
}

// updateHealerTargets recomputes every healer's target from scratch: the
// in-range injured ally with the lowest hp ratio wins, any previous target
// is overwritten, and a healer with no qualifying ally holds no target at
// all. Keeping a stale heal target would waste casts on full-health units.
func updateHealerTargets(e *ecs.ECS) {
	healerQuery.Each(e.World, func(healerEntry *donburi.Entry) {
		healerPos := components.Position.Get(healerEntry).Point
		stats := components.Stats.Get(healerEntry)

		var best donburi.Entity
		found := false
		minRatio := 2.0

		injuredAllyQuery.Each(e.World, func(allyEntry *donburi.Entry) {
			allyPos := components.Position.Get(allyEntry).Point
			if !inRange(stats, healerPos, allyPos) {
				return
			}
			allyStats := components.Stats.Get(allyEntry)
			ratio := allyStats.HP / allyStats.MaxHP
			if ratio < minRatio {
				minRatio = ratio
				best = allyEntry.Entity()
				found = true
			}
		})

		if found {
			if !healerEntry.HasComponent(components.Target) {
				healerEntry.AddComponent(components.Target)
			}
			components.Target.SetValue(healerEntry, components.TargetData{Entity: best})
		} else if healerEntry.HasComponent(components.Target) {
			healerEntry.RemoveComponent(components.Target)
		}
	})
}

func firstInRange(e *ecs.ECS, candidates *donburi.Query, stats *components.StatsData, from gamemath.Vector) (donburi.Entity, bool) {
	var match donburi.Entity
	found := false
	candidates.Each(e.World, func(entry *donburi.Entry) {
		if found {
			return
		}
		pos := components.Position.Get(entry).Point
		if inRange(stats, from, pos) {
			match = entry.Entity()
			found = true
		}
	})
	return match, found
}

// inRange applies the unit-radius range compensation. The comparison is
// inclusive: a target sitting exactly on the compensated radius is in range.
func inRange(stats *components.StatsData, from, to gamemath.Vector) bool {
	radius := stats.Range + cfg.Sim.UnitRadius
	return gamemath.DistanceSquared(from, to) <= radius*radius
}
