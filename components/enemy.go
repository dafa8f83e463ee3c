package components

import "github.com/yohamta/donburi"

// EnemyData marks a unit as an enemy and carries its path navigation state.
type EnemyData struct {
	// TargetWaypointID is the id of the waypoint the enemy is walking
	// toward. It must always name a node of the loaded graph.
	TargetWaypointID int
	// Speed is the movement speed in units per second.
	Speed float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
