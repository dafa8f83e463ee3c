package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is the renderable surface of a unit. Drawing happens outside
// this core; the orientation system only writes FlipX.
type SpriteData struct {
	Image *ebiten.Image
	FlipX bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
