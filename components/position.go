package components

import (
	"github.com/bastiongame/bastion/gamemath"
	"github.com/yohamta/donburi"
)

type PositionData struct {
	Point gamemath.Vector
}

var Position = donburi.NewComponentType[PositionData]()
