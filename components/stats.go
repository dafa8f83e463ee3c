package components

import "github.com/yohamta/donburi"

// StatsData holds a unit's combat state. HP and the Injured tag are mutated
// by the external damage logic; this core reads them and owns AtkTimer.
type StatsData struct {
	HP          float64
	MaxHP       float64
	Atk         float64
	Def         float64
	Range       float64
	AtkInterval float64 // seconds between attacks
	AtkTimer    float64 // seconds accrued toward the next attack
	Level       int
	Rarity      int
}

var Stats = donburi.NewComponentType[StatsData]()
