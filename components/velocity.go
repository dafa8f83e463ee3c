package components

import (
	"github.com/bastiongame/bastion/gamemath"
	"github.com/yohamta/donburi"
)

// VelocityData is written by path navigation and attack dispatch, and
// consumed by the external movement integrator.
type VelocityData struct {
	Velocity gamemath.Vector
}

var Velocity = donburi.NewComponentType[VelocityData]()
