package systems

import (
	"github.com/bastiongame/bastion/components"
	cfg "github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/events"
	"github.com/bastiongame/bastion/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func fixedDT(dt float64) func() float64 {
	return func() float64 { return dt }
}

func testStats(rangeVal, atkInterval float64) components.StatsData {
	return components.StatsData{
		HP:          100,
		MaxHP:       100,
		Atk:         10,
		Range:       rangeVal,
		AtkInterval: atkInterval,
	}
}

func spawnEnemy(e *ecs.ECS, pos gamemath.Vector, stats components.StatsData, extra ...donburi.IComponentType) *donburi.Entry {
	base := []donburi.IComponentType{
		components.Enemy,
		components.Stats,
		components.Position,
		components.Velocity,
	}
	entry := e.World.Entry(e.Create(cfg.Default, append(base, extra...)...))
	components.Stats.SetValue(entry, stats)
	components.Position.SetValue(entry, components.PositionData{Point: pos})
	return entry
}

func spawnPlayerUnit(e *ecs.ECS, pos gamemath.Vector, stats components.StatsData, extra ...donburi.IComponentType) *donburi.Entry {
	base := []donburi.IComponentType{
		components.Player,
		components.Stats,
		components.Position,
	}
	entry := e.World.Entry(e.Create(cfg.Default, append(base, extra...)...))
	components.Stats.SetValue(entry, stats)
	components.Position.SetValue(entry, components.PositionData{Point: pos})
	return entry
}

func setTarget(entry *donburi.Entry, target donburi.Entity) {
	if !entry.HasComponent(components.Target) {
		entry.AddComponent(components.Target)
	}
	components.Target.SetValue(entry, components.TargetData{Entity: target})
}

func setBlocker(entry *donburi.Entry, blocker donburi.Entity) {
	if !entry.HasComponent(components.BlockedBy) {
		entry.AddComponent(components.BlockedBy)
	}
	components.BlockedBy.SetValue(entry, components.BlockedByData{Blocker: blocker})
}

// animRecorder collects PlayAnimation events delivered through the world's
// event queue.
type animRecorder struct {
	played []events.PlayAnimation
}

func (r *animRecorder) subscribe(w donburi.World) {
	events.PlayAnimationEvent.Subscribe(w, func(w donburi.World, event events.PlayAnimation) {
		r.played = append(r.played, event)
	})
}

func (r *animRecorder) forEntity(entity donburi.Entity) []events.PlayAnimation {
	var out []events.PlayAnimation
	for _, p := range r.played {
		if p.Entity == entity {
			out = append(out, p)
		}
	}
	return out
}
