package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// Notifications for animation, VFX and UI collaborators. They are queued
// while a tick runs and delivered once it has finished.

type ZoneEvent struct {
	Zone     donburi.Entity
	Emitter  donburi.Entity
	Position math.Vec2
	Rotation float64
}

type DamagedEvent struct {
	Target    donburi.Entity
	Source    donburi.Entity
	Amount    float64
	Remaining float64
}

type DiedEvent struct {
	Entity   donburi.Entity
	Position math.Vec2
}

type DashStateChangedEvent struct {
	Entity donburi.Entity
	From   components.DashPhase
	To     components.DashPhase
}

var (
	ZoneSpawned      = events.NewEventType[ZoneEvent]()
	ZoneDestroyed    = events.NewEventType[ZoneEvent]()
	Damaged          = events.NewEventType[DamagedEvent]()
	Died             = events.NewEventType[DiedEvent]()
	DashStateChanged = events.NewEventType[DashStateChangedEvent]()
)

// DeliverEvents hands every queued notification to its subscribers.
func DeliverEvents(t *Tick) {
	events.ProcessAllEvents(t.World)
}
