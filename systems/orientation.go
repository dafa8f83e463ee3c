package systems

import (
	"math"

	"github.com/bastiongame/bastion/components"
	cfg "github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/gamemath"
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var orientationQuery = donburi.NewQuery(filter.Contains(
	components.Sprite,
	components.Position,
))

// UpdateOrientation derives left/right facing for every renderable unit.
// Priority: locked target, then blocker, then movement direction. If none
// decides the facing, the previous one stands.
func UpdateOrientation(e *ecs.ECS) {
	orientationQuery.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry).Point

		faceLeft, decided := facingFromReferent(e, entry, pos)

		if !decided && entry.HasComponent(components.Velocity) {
			vx := components.Velocity.Get(entry).Velocity.X
			if math.Abs(vx) > cfg.Sim.FacingDeadzone {
				faceLeft = vx < 0
				decided = true
			}
		}
		if !decided {
			return
		}

		sprite := components.Sprite.Get(entry)
		// Art that defaults to facing left flips the other way.
		if entry.HasComponent(tags.FaceLeft) {
			sprite.FlipX = !faceLeft
		} else {
			sprite.FlipX = faceLeft
		}
	})
}

// facingFromReferent resolves facing against the locked target, falling back
// to the blocker. Stale handles and position-less referents decide nothing.
func facingFromReferent(e *ecs.ECS, entry *donburi.Entry, pos gamemath.Vector) (bool, bool) {
	if entry.HasComponent(components.Target) {
		if x, ok := referentX(e, components.Target.Get(entry).Entity); ok {
			return x < pos.X, true
		}
	}
	if entry.HasComponent(components.BlockedBy) {
		if x, ok := referentX(e, components.BlockedBy.Get(entry).Blocker); ok {
			return x < pos.X, true
		}
	}
	return false, false
}

func referentX(e *ecs.ECS, entity donburi.Entity) (float64, bool) {
	if !e.World.Valid(entity) {
		return 0, false
	}
	entry := e.World.Entry(entity)
	if !entry.HasComponent(components.Position) {
		return 0, false
	}
	return components.Position.Get(entry).Point.X, true
}
