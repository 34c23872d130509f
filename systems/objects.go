package systems

import (
	"math"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// SyncObjects moves sub-entities onto their parents and refits every
// broadphase object to its body. Moving bodies are fitted to the area they
// sweep over the tick so the narrow phase sees what they are about to hit.
func SyncObjects(t *Tick) {
	followParents(t)

	dt := t.Seconds()
	for e := range components.Object.Iter(t.World) {
		if !e.HasComponent(components.Body) {
			continue
		}
		body := components.Body.Get(e)
		obj := components.Object.Get(e)

		minX, minY, maxX, maxY := body.Placement().Bounds()
		if body.Kind != components.Static && !body.Sensor {
			dx, dy := body.Velocity.X*dt, body.Velocity.Y*dt
			m := cfg.Arena.SpeculativeMargin
			minX, maxX = math.Min(minX, minX+dx)-m, math.Max(maxX, maxX+dx)+m
			minY, maxY = math.Min(minY, minY+dy)-m, math.Max(maxY, maxY+dy)+m
		}

		obj.X, obj.Y = minX, minY
		obj.W, obj.H = maxX-minX, maxY-minY
		obj.Update()
	}
}

func followParents(t *Tick) {
	components.Hurtbox.Each(t.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Parent) || !e.HasComponent(components.Body) {
			return
		}
		parent := t.entry(components.Parent.Get(e).Entity)
		if parent == nil || !parent.HasComponent(components.Body) {
			return
		}
		components.Body.Get(e).Position = components.Body.Get(parent).Position.Add(components.Hurtbox.Get(e).Offset)
	})
}
