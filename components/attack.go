package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AttackData configures the melee zone an entity spawns when it attacks.
type AttackData struct {
	Facing   math.Vec2 // last non-negligible look direction, unit length
	Damage   float64
	Lifetime time.Duration
	Radius   float64 // zone is 2r wide along Facing and r deep
	Reach    float64 // distance from the attacker to the zone centre
	Layers   Layers
}

var Attack = donburi.NewComponentType[AttackData]()
