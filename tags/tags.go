package tags

import "github.com/yohamta/donburi"

var (
	// Dead marks an entity for destruction at the start of the next tick.
	// Batching the destruction keeps every other system from observing a
	// half-destroyed entity mid-tick.
	Dead = donburi.NewTag().SetName("Dead")

	// FaceLeft marks art that faces left by default; the orientation
	// system inverts the computed facing flag before writing it.
	FaceLeft = donburi.NewTag().SetName("FaceLeft")

	MeleeUnit  = donburi.NewTag().SetName("MeleeUnit")
	RangedUnit = donburi.NewTag().SetName("RangedUnit")
	Healer     = donburi.NewTag().SetName("Healer")

	// AttackReady is attached by the timer system when the attack cooldown
	// elapses and removed by attack dispatch when the attack starts.
	AttackReady = donburi.NewTag().SetName("AttackReady")

	// Injured marks units below full health. Maintained by the external
	// damage logic; healers pick targets among injured allies.
	Injured = donburi.NewTag().SetName("Injured")

	// ActionLock marks an entity playing out an uninterruptible action.
	// The animation state system removes it when the animation finishes.
	ActionLock = donburi.NewTag().SetName("ActionLock")
)
