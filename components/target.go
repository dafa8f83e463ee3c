package components

import "github.com/yohamta/donburi"

// TargetData stores the entity this unit has locked on to. The handle is a
// weak reference: it does not keep the target alive and the targeting system
// revalidates it every tick before anything else reads it.
type TargetData struct {
	Entity donburi.Entity
}

var Target = donburi.NewComponentType[TargetData]()
