package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// HurtboxData marks a sensor that damage zones can hit. Its body follows the
// parent's position plus Offset.
type HurtboxData struct {
	Offset math.Vec2
}

var Hurtbox = donburi.NewComponentType[HurtboxData]()
