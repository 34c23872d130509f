package systems

import (
	"math"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// ResolveKinematicContacts gives kinematic, movement-driven bodies a
// collision response: they are pushed out of whatever they overlap and
// their velocity slides along the contact surface. Against dynamic bodies
// only the position is corrected.
func ResolveKinematicContacts(t *Tick) {
	dt := t.Seconds()
	for _, m := range t.Contacts {
		e1, e2 := t.entry(m.Entity1), t.entry(m.Entity2)
		if e1 == nil || e2 == nil {
			continue
		}
		if !e1.HasComponent(components.Body) || !e2.HasComponent(components.Body) {
			continue
		}
		if components.Body.Get(e1).Sensor || components.Body.Get(e2).Sensor {
			continue
		}

		var controller, other *donburi.Entry
		normal := m.Normal
		switch {
		case isController(e1):
			controller, other = e1, e2
			normal = normal.MulScalar(-1)
		case isController(e2):
			controller, other = e2, e1
		default:
			continue
		}

		resolveManifold(components.Body.Get(controller), components.Body.Get(other), m, normal, dt)
	}
}

func isController(e *donburi.Entry) bool {
	return e.HasComponent(components.Movement) && components.Body.Get(e).Kind == components.Kinematic
}

// resolveManifold applies one manifold to body. normal points from the other
// body toward body.
func resolveManifold(body, other *components.BodyData, m Manifold, normal math2.Vec2, dt float64) {
	if len(m.Points) == 0 {
		return
	}

	deepest := math.Inf(-1)
	for _, p := range m.Points {
		if p.Penetration > 0 {
			body.Position = body.Position.Add(normal.MulScalar(p.Penetration))
		}
		deepest = math.Max(deepest, p.Penetration)
	}

	if other.Kind == components.Dynamic {
		return
	}

	if deepest > 0 {
		if gamemath.Dot(body.Velocity, normal) > 0 {
			return
		}
		body.Velocity = gamemath.RejectFromNormalized(body.Velocity, normal)
		return
	}

	normalSpeed := gamemath.Dot(body.Velocity, normal)
	if normalSpeed > 0 || dt <= 0 {
		return
	}

	// Remove the part of the velocity that would carry the body past the
	// surface within this tick. The correction never pulls downward.
	impulse := normal.MulScalar(normalSpeed - deepest/dt)
	impulse.Y = math.Max(impulse.Y, 0)
	body.Velocity = body.Velocity.Sub(impulse)
}
