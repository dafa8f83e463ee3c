package systems

import (
	"github.com/bastiongame/bastion/components"
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var timerQuery = donburi.NewQuery(filter.And(
	filter.Contains(components.Stats),
	filter.Not(filter.Contains(tags.AttackReady)),
))

// TimerSystem accrues attack readiness on every stats-bearing unit that is
// not already ready. The timestep is read through dt on every tick so a
// config reload changes the accrual rate without rebuilding the scene.
type TimerSystem struct {
	dt func() float64
}

func NewTimerSystem(dt func() float64) *TimerSystem {
	return &TimerSystem{dt: dt}
}

func (s *TimerSystem) Update(e *ecs.ECS) {
	dt := s.dt()
	timerQuery.Each(e.World, func(entry *donburi.Entry) {
		stats := components.Stats.Get(entry)

		stats.AtkTimer += dt
		if stats.AtkTimer >= stats.AtkInterval {
			// The timer is not reset here. It resets when the attack is
			// actually dispatched, so a unit that cannot act keeps exactly
			// one pending readiness instead of accumulating several.
			entry.AddComponent(tags.AttackReady)
		}
	})
}
