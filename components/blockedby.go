package components

import "github.com/yohamta/donburi"

// BlockedByData records an active melee engagement. It is attached and
// removed by the external engagement detector; this core only reads it.
// Like TargetData its handle is a weak reference.
type BlockedByData struct {
	Blocker donburi.Entity
}

var BlockedBy = donburi.NewComponentType[BlockedByData]()
