package components

import "github.com/yohamta/donburi"

// ClassNameData carries the unit type name the entity was spawned from,
// mostly for logging.
type ClassNameData struct {
	Name string
}

var ClassName = donburi.NewComponentType[ClassNameData]()
