// Package events defines the transient events exchanged between the decision
// systems and their external collaborators. Everything goes through donburi's
// single-threaded event feature: Publish enqueues, and the battle scene
// drains all queues once per tick in FIFO order. No event is persisted.
package events

import (
	"github.com/bastiongame/bastion/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PlayAnimation asks the external playback collaborator to start a clip.
// For every non-looping clip played to completion, playback must publish
// exactly one AnimationFinished back.
type PlayAnimation struct {
	Entity    donburi.Entity
	Animation config.AnimationID
	Loop      bool
}

// AnimationFinished reports that a non-looping clip completed.
type AnimationFinished struct {
	Entity donburi.Entity
}

// EnemyArriveHome fires when an enemy reaches a waypoint with no outgoing
// edges. Consumed by external game-state logic (life loss).
type EnemyArriveHome struct{}

var (
	PlayAnimationEvent     = events.NewEventType[PlayAnimation]()
	AnimationFinishedEvent = events.NewEventType[AnimationFinished]()
	EnemyArriveHomeEvent   = events.NewEventType[EnemyArriveHome]()
)

// ProcessAll drains every event queue in publish order.
func ProcessAll(w donburi.World) {
	events.ProcessAllEvents(w)
}
