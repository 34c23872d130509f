package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi"
)

// Integrate advances every non-static body by its velocity.
func Integrate(t *Tick) {
	dt := t.Seconds()
	components.Body.Each(t.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		switch body.Kind {
		case components.Static:
			return
		case components.Kinematic, components.Dynamic:
			body.Position = body.Position.Add(body.Velocity.MulScalar(dt))
		}
	})
}
