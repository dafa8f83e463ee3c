package scenes

import (
	"math/rand"

	cfg "github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/events"
	"github.com/bastiongame/bastion/leveldata"
	"github.com/bastiongame/bastion/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// BattleScene wires the decision systems into one ECS in their fixed tick
// order. The order is the only concurrency-safety mechanism the simulation
// has; collaborator systems (engagement detection, movement, playback) are
// injected at their documented positions rather than appended at the end.
type BattleScene struct {
	ecs *ecs.ECS
	log *zap.Logger
}

type Option func(*sceneOptions)

type sceneOptions struct {
	log           *zap.Logger
	rng           *rand.Rand
	blockDetector ecs.System
	movement      ecs.System
	playback      ecs.System
}

// WithLogger sets the scene logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *sceneOptions) { o.log = log }
}

// WithRand sets the RNG used for waypoint branch choices, so runs can be
// reproduced from a seed.
func WithRand(rng *rand.Rand) Option {
	return func(o *sceneOptions) { o.rng = rng }
}

// WithBlockDetector injects the external melee-engagement detector. It runs
// after path navigation and before target acquisition.
func WithBlockDetector(sys ecs.System) Option {
	return func(o *sceneOptions) { o.blockDetector = sys }
}

// WithMovement injects the external movement integrator. It runs after
// attack dispatch.
func WithMovement(sys ecs.System) Option {
	return func(o *sceneOptions) { o.movement = sys }
}

// WithPlayback injects the external animation playback collaborator. It runs
// after movement; AnimationFinished events it publishes are delivered in the
// same tick.
func WithPlayback(sys ecs.System) Option {
	return func(o *sceneOptions) { o.playback = sys }
}

func NewBattleScene(graph leveldata.WaypointGraph, opts ...Option) *BattleScene {
	o := &sceneOptions{
		log: zap.NewNop(),
		rng: rand.New(rand.NewSource(rand.Int63())),
	}
	for _, opt := range opts {
		opt(o)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Reconciliation is event-driven: it fires when the drain below
	// delivers AnimationFinished.
	events.AnimationFinishedEvent.Subscribe(e.World, systems.OnAnimationFinished)

	// Tick order. Removal runs first so everything tagged Dead last tick
	// is gone before any decision system looks at the world.
	e.AddSystem(systems.NewRemovalSystem(o.log).Update)
	e.AddSystem(systems.NewPathSystem(graph, o.rng, o.log).Update)
	if o.blockDetector != nil {
		e.AddSystem(o.blockDetector)
	}
	e.AddSystem(systems.UpdateTargets)
	e.AddSystem(systems.NewTimerSystem(func() float64 { return cfg.Sim.DT() }).Update)
	e.AddSystem(systems.StartAttacks)
	if o.movement != nil {
		e.AddSystem(o.movement)
	}
	if o.playback != nil {
		e.AddSystem(o.playback)
	}
	// Deliver this tick's events (attack animations to playback,
	// completions to reconciliation, arrivals to game state) before facing
	// is resolved.
	e.AddSystem(drainEvents)
	e.AddSystem(systems.UpdateOrientation)
	// Reconciliation publishes follow-up animations during the first
	// drain; flush them out before the tick ends.
	e.AddSystem(drainEvents)

	return &BattleScene{ecs: e, log: o.log}
}

func drainEvents(e *ecs.ECS) {
	events.ProcessAll(e.World)
}

// Update advances the simulation one tick.
func (s *BattleScene) Update() {
	s.ecs.Update()
}

// ECS exposes the underlying ECS for spawning and for collaborator wiring.
func (s *BattleScene) ECS() *ecs.ECS {
	return s.ecs
}

// World returns the entity store.
func (s *BattleScene) World() donburi.World {
	return s.ecs.World
}
