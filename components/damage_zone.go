package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// DamageZoneData is a short-lived sensor that damages each target once.
type DamageZoneData struct {
	Emitter   donburi.Entity // not owned; may no longer resolve
	Damage    float64
	Remaining time.Duration
	Hit       map[donburi.Entity]struct{}
}

var DamageZone = donburi.NewComponentType[DamageZoneData]()
