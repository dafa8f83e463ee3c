package systems

import (
	"testing"

	"github.com/bastiongame/bastion/components"
	"github.com/bastiongame/bastion/gamemath"
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

func TestRemovalDestroysDeadEntities(t *testing.T) {
	e := newTestECS()
	sys := NewRemovalSystem(zap.NewNop())

	doomed := spawnEnemy(e, gamemath.Vector{}, testStats(20, 1), tags.Dead)
	survivor := spawnEnemy(e, gamemath.Vector{X: 10}, testStats(20, 1))
	doomedEntity := doomed.Entity()

	sys.Update(e)

	if e.World.Valid(doomedEntity) {
		t.Fatal("dead entity must be destroyed")
	}
	if !e.World.Valid(survivor.Entity()) {
		t.Fatal("living entity must survive the sweep")
	}

	// The destroyed entity is gone from every view.
	count := 0
	components.Enemy.Each(e.World, func(entry *donburi.Entry) { count++ })
	if count != 1 {
		t.Fatalf("enemy view holds %d entities, want 1", count)
	}
}

func TestRemovalInvalidatesWeakReferences(t *testing.T) {
	e := newTestECS()
	sys := NewRemovalSystem(zap.NewNop())

	enemy := spawnEnemy(e, gamemath.Vector{X: 10}, testStats(20, 1), tags.Dead)
	player := spawnPlayerUnit(e, gamemath.Vector{}, testStats(50, 1))
	setTarget(player, enemy.Entity())

	sys.Update(e)
	UpdateTargets(e)

	if player.HasComponent(components.Target) {
		t.Fatal("destruction must invalidate the weak target reference")
	}
}
