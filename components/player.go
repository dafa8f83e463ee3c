package components

import "github.com/yohamta/donburi"

// PlayerData marks a unit as a deployed player unit.
type PlayerData struct {
	Cost int
}

var Player = donburi.NewComponentType[PlayerData]()
