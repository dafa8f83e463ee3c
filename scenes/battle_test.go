package scenes

import (
	"math/rand"
	"testing"

	"github.com/bastiongame/bastion/components"
	cfg "github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/events"
	"github.com/bastiongame/bastion/gamemath"
	"github.com/bastiongame/bastion/leveldata"
	"github.com/bastiongame/bastion/systems/factory"
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func lineGraph() leveldata.WaypointGraph {
	return leveldata.WaypointGraph{
		1: {ID: 1, Position: gamemath.Vector{X: 0, Y: 0}, NextIDs: []int{2}},
		2: {ID: 2, Position: gamemath.Vector{X: 600, Y: 0}},
	}
}

func TestDeadEntityAbsentNextTick(t *testing.T) {
	scene := NewBattleScene(lineGraph(), WithRand(rand.New(rand.NewSource(1))))

	enemy := factory.CreateEnemy(scene.ECS(), "Soldier", gamemath.Vector{X: 300}, 2)
	entity := enemy.Entity()

	// Tagged during tick N...
	scene.Update()
	enemy.AddComponent(tags.Dead)

	// ...gone before any system of tick N+1 sees it.
	scene.Update()
	if scene.World().Valid(entity) {
		t.Fatal("entity tagged Dead in tick N must be absent in tick N+1")
	}
}

func TestEnemyWalksGraphAndLeaks(t *testing.T) {
	scene := NewBattleScene(lineGraph(),
		WithRand(rand.New(rand.NewSource(1))),
		WithMovement(func(e *ecs.ECS) {
			dt := cfg.Sim.DT()
			components.Velocity.Each(e.World, func(entry *donburi.Entry) {
				vel := components.Velocity.Get(entry).Velocity
				pos := components.Position.Get(entry)
				pos.Point = pos.Point.Add(vel.Scale(dt))
			})
		}),
	)

	arrivals := 0
	events.EnemyArriveHomeEvent.Subscribe(scene.World(), func(w donburi.World, event events.EnemyArriveHome) {
		arrivals++
	})

	enemy := factory.CreateEnemy(scene.ECS(), "Soldier", gamemath.Vector{X: 0}, 1)
	entity := enemy.Entity()

	// 600 units at 40 u/s is 15 seconds of travel; give it headroom.
	for i := 0; i < 20*cfg.Sim.TickRate; i++ {
		scene.Update()
		if !scene.World().Valid(entity) {
			break
		}
	}

	if arrivals != 1 {
		t.Fatalf("arrivals = %d, want exactly 1", arrivals)
	}
	if scene.World().Valid(entity) {
		t.Fatal("leaked enemy must be destroyed after arriving home")
	}
}

func TestTimerFollowsTickRateChange(t *testing.T) {
	scene := NewBattleScene(lineGraph(), WithRand(rand.New(rand.NewSource(1))))

	// A config change after the scene is built must be picked up by the
	// next tick, not frozen at construction time.
	saved := cfg.Sim.TickRate
	defer func() { cfg.Sim.TickRate = saved }()
	cfg.Sim.TickRate = 2

	guard := factory.CreatePlayerUnit(scene.ECS(), "Guard", gamemath.Vector{})

	// Guard interval is 1.2s. At 2 ticks per second each tick accrues
	// 0.5s, so readiness lands on the third tick.
	scene.Update()
	scene.Update()
	if guard.HasComponent(tags.AttackReady) {
		t.Fatal("1.0s accrued against a 1.2s interval, guard should not be ready")
	}

	scene.Update()
	if !guard.HasComponent(tags.AttackReady) {
		t.Fatal("1.5s accrued against a 1.2s interval, guard should be ready")
	}
}

// scriptedPlayback completes each non-looping clip after a fixed number of
// ticks, as the external playback collaborator contractually must.
type scriptedPlayback struct {
	remaining map[donburi.Entity]int
}

func (p *scriptedPlayback) system(e *ecs.ECS) {
	for entity, left := range p.remaining {
		left--
		if left <= 0 {
			delete(p.remaining, entity)
			events.AnimationFinishedEvent.Publish(e.World, events.AnimationFinished{Entity: entity})
			continue
		}
		p.remaining[entity] = left
	}
}

func (p *scriptedPlayback) subscribe(w donburi.World) {
	events.PlayAnimationEvent.Subscribe(w, func(w donburi.World, event events.PlayAnimation) {
		if event.Loop {
			delete(p.remaining, event.Entity)
			return
		}
		p.remaining[event.Entity] = 2
	})
}

func TestBlockedEnemyAttackCycle(t *testing.T) {
	playback := &scriptedPlayback{remaining: map[donburi.Entity]int{}}

	var guardEntity donburi.Entity
	scene := NewBattleScene(lineGraph(),
		WithRand(rand.New(rand.NewSource(1))),
		// The engagement detector pins every melee enemy to the guard.
		WithBlockDetector(func(e *ecs.ECS) {
			tags.MeleeUnit.Each(e.World, func(entry *donburi.Entry) {
				if !entry.HasComponent(components.Enemy) || entry.HasComponent(components.BlockedBy) {
					return
				}
				entry.AddComponent(components.BlockedBy)
				components.BlockedBy.SetValue(entry, components.BlockedByData{Blocker: guardEntity})
			})
		}),
		WithPlayback(playback.system),
	)
	playback.subscribe(scene.World())

	var played []events.PlayAnimation
	events.PlayAnimationEvent.Subscribe(scene.World(), func(w donburi.World, event events.PlayAnimation) {
		played = append(played, event)
	})

	guard := factory.CreatePlayerUnit(scene.ECS(), "Guard", gamemath.Vector{X: 10})
	guardEntity = guard.Entity()
	enemy := factory.CreateEnemy(scene.ECS(), "Soldier", gamemath.Vector{X: 0}, 2)

	// Soldier interval is 1.5s; run two seconds of ticks so the attack
	// dispatches and its animation completes.
	for i := 0; i < 2*cfg.Sim.TickRate; i++ {
		scene.Update()
	}

	var sawAttack, sawIdle bool
	for _, p := range played {
		if p.Entity != enemy.Entity() {
			continue
		}
		switch {
		case p.Animation == cfg.AnimAttack && !p.Loop:
			sawAttack = true
		case p.Animation == cfg.AnimIdle && p.Loop && sawAttack:
			sawIdle = true
		}
	}
	if !sawAttack {
		t.Fatal("blocked ready enemy should have dispatched a melee attack")
	}
	if !sawIdle {
		t.Fatal("completed attack should be followed by a looping idle while blocked")
	}
	if enemy.HasComponent(tags.ActionLock) {
		t.Fatal("lock must come off once the attack animation finished")
	}
}
