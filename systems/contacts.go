package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ContactPoint is one point of a manifold. Penetration is zero or negative
// when the bodies are still apart.
type ContactPoint struct {
	Point       math.Vec2
	Penetration float64
}

// Manifold groups the contact points between two bodies that share a
// normal. Normal points from Entity1 toward Entity2.
type Manifold struct {
	Entity1 donburi.Entity
	Entity2 donburi.Entity
	Normal  math.Vec2
	Points  []ContactPoint
}

// Deepest returns the largest penetration among the manifold's points.
func (m Manifold) Deepest() float64 {
	if len(m.Points) == 0 {
		return 0
	}
	deepest := m.Points[0].Penetration
	for _, p := range m.Points[1:] {
		if p.Penetration > deepest {
			deepest = p.Penetration
		}
	}
	return deepest
}

type pairKey struct {
	a, b donburi.Entity
}

func newPairKey(a, b donburi.Entity) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// GenerateContacts fills t.Contacts with a manifold for every pair of solid
// bodies that overlap, or that are closing fast enough to touch within the
// tick. Each pair is reported once.
func GenerateContacts(t *Tick) {
	t.Contacts = t.Contacts[:0]
	if t.Space == nil {
		return
	}

	dt := t.Seconds()
	seen := make(map[pairKey]struct{})
	components.Body.Each(t.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Kind == components.Static || body.Sensor || !e.HasComponent(components.Object) {
			return
		}

		check := components.Object.Get(e).Check(0, 0, tags.ResolvSolid, tags.ResolvBody)
		if check == nil {
			return
		}

		for _, obj := range check.Objects {
			other, ok := obj.Data.(*donburi.Entry)
			if !ok || other == e || !other.Valid() || !other.HasComponent(components.Body) {
				continue
			}
			otherBody := components.Body.Get(other)
			if otherBody.Sensor || !body.Layers.Interacts(otherBody.Layers) {
				continue
			}

			key := newPairKey(e.Entity(), other.Entity())
			if _, dup := seen[key]; dup {
				continue
			}

			relative := otherBody.Velocity.Sub(body.Velocity)
			c, ok := gamemath.Collide(body.Placement(), otherBody.Placement(), gamemath.Length(relative)*dt)
			if !ok {
				continue
			}
			if c.Penetration <= 0 {
				closing := -gamemath.Dot(relative, c.Normal) * dt
				if closing < -c.Penetration {
					continue
				}
			}

			seen[key] = struct{}{}
			t.Contacts = append(t.Contacts, Manifold{
				Entity1: e.Entity(),
				Entity2: other.Entity(),
				Normal:  c.Normal,
				Points:  []ContactPoint{{Point: c.Point, Penetration: c.Penetration}},
			})
		}
	})
}

// Overlapping returns the entries tagged for resolvTag in the broadphase
// around obj whose colliders overlap p and whose layers interact with
// layers. Sensors are included.
func Overlapping(obj *resolv.Object, p gamemath.Placement, layers components.Layers, resolvTag string) []*donburi.Entry {
	check := obj.Check(0, 0, resolvTag)
	if check == nil {
		return nil
	}

	var found []*donburi.Entry
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || !other.Valid() || !other.HasComponent(components.Body) {
			continue
		}
		otherBody := components.Body.Get(other)
		if !layers.Interacts(otherBody.Layers) {
			continue
		}
		if gamemath.Overlaps(p, otherBody.Placement()) {
			found = append(found, other)
		}
	}
	return found
}

// OverlappingHurtboxes is Overlapping restricted to hurtboxes.
func OverlappingHurtboxes(obj *resolv.Object, p gamemath.Placement, layers components.Layers) []*donburi.Entry {
	return Overlapping(obj, p, layers, tags.ResolvHurtbox)
}
