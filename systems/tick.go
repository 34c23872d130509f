package systems

import (
	"time"

	"github.com/automoto/brawlcore/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Tick carries the state shared by the phases of one simulation step.
// Contacts and Damage are produced and consumed within the step.
type Tick struct {
	World    donburi.World
	Space    *resolv.Space
	Delta    time.Duration
	Contacts []Manifold
	Damage   []DamageEvent
}

func NewTick(w donburi.World, dt time.Duration) *Tick {
	return &Tick{
		World: w,
		Space: SpaceOf(w),
		Delta: dt,
	}
}

// Seconds returns the step length in seconds.
func (t *Tick) Seconds() float64 {
	return t.Delta.Seconds()
}

// entry resolves e, or returns nil when the entity no longer exists.
func (t *Tick) entry(e donburi.Entity) *donburi.Entry {
	if e == donburi.Null || !t.World.Valid(e) {
		return nil
	}
	return t.World.Entry(e)
}

// SpaceOf returns the world's broadphase space, or nil if none was created.
func SpaceOf(w donburi.World) *resolv.Space {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(spaceEntry)
}
