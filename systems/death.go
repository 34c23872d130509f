package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi"
)

// SweepDeaths removes every entity whose health has run out, together with
// everything it owns.
func SweepDeaths(t *Tick) {
	var dead []*donburi.Entry
	for e := range components.Health.Iter(t.World) {
		if components.Health.Get(e).Current <= 0 {
			dead = append(dead, e)
		}
	}

	for _, e := range dead {
		if !e.Valid() {
			continue
		}
		ev := DiedEvent{Entity: e.Entity()}
		if e.HasComponent(components.Body) {
			ev.Position = components.Body.Get(e).Position
		}
		Destroy(t, e.Entity())
		Died.Publish(t.World, ev)
	}
}

// Destroy removes entity and, first, everything listed in its Children. Any
// broadphase objects are taken out of the space.
func Destroy(t *Tick, entity donburi.Entity) {
	e := t.entry(entity)
	if e == nil {
		return
	}

	if e.HasComponent(components.Children) {
		for _, child := range components.Children.Get(e).Entities {
			Destroy(t, child)
		}
	}

	if t.Space != nil && e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			t.Space.Remove(obj.Object)
		}
	}
	t.World.Remove(entity)
}
