package systems

import (
	"github.com/bastiongame/bastion/components"
	cfg "github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/events"
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
)

// OnAnimationFinished reconciles unit state when a non-looping animation
// completes: the action lock comes off and the unit falls back to its
// ambient looping animation. Enemies resume walking unless a blocker holds
// them in place; player units idle. Entities with neither role get no
// follow-up. Subscribed to AnimationFinished by the battle scene.
func OnAnimationFinished(w donburi.World, event events.AnimationFinished) {
	if !w.Valid(event.Entity) {
		return
	}
	entry := w.Entry(event.Entity)

	if entry.HasComponent(tags.ActionLock) {
		entry.RemoveComponent(tags.ActionLock)
	}

	switch {
	case entry.HasComponent(components.Enemy):
		anim := cfg.AnimWalk
		if entry.HasComponent(components.BlockedBy) {
			anim = cfg.AnimIdle
		}
		events.PlayAnimationEvent.Publish(w, events.PlayAnimation{
			Entity:    event.Entity,
			Animation: anim,
			Loop:      true,
		})
	case entry.HasComponent(components.Player):
		events.PlayAnimationEvent.Publish(w, events.PlayAnimation{
			Entity:    event.Entity,
			Animation: cfg.AnimIdle,
			Loop:      true,
		})
	}
}
