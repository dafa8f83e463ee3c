package config

// AnimationID names a clip for the external playback collaborator. The
// decision core only requests clips by id; frame data lives with playback.
type AnimationID string

const (
	AnimIdle         AnimationID = "idle"
	AnimWalk         AnimationID = "walk"
	AnimAttack       AnimationID = "attack"
	AnimRangedAttack AnimationID = "ranged_attack"
	AnimHeal         AnimationID = "heal"
)
