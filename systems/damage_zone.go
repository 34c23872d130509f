package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi"
)

// UpdateDamageZones ages every zone and registers its hits. A zone damages
// each target at most once; expired zones are removed with their visuals
// after all zones have been processed.
func UpdateDamageZones(t *Tick) {
	var expired []*donburi.Entry
	components.DamageZone.Each(t.World, func(e *donburi.Entry) {
		zone := components.DamageZone.Get(e)
		zone.Remaining -= t.Delta
		if zone.Remaining <= 0 {
			expired = append(expired, e)
			return
		}
		if !e.HasComponent(components.Body) || !e.HasComponent(components.Object) {
			return
		}

		body := components.Body.Get(e)
		obj := components.Object.Get(e).Object
		for _, hurtbox := range OverlappingHurtboxes(obj, body.Placement(), body.Layers) {
			target := damageTarget(t, hurtbox)
			if target == nil {
				continue
			}
			id := target.Entity()
			if _, hit := zone.Hit[id]; hit {
				continue
			}
			zone.Hit[id] = struct{}{}
			t.Damage = append(t.Damage, DamageEvent{
				Amount: zone.Damage,
				Target: id,
				Source: zone.Emitter,
			})
		}
	})

	for _, e := range expired {
		ev := ZoneEvent{
			Zone:    e.Entity(),
			Emitter: components.DamageZone.Get(e).Emitter,
		}
		if e.HasComponent(components.Body) {
			body := components.Body.Get(e)
			ev.Position, ev.Rotation = body.Position, body.Rotation
		}
		Destroy(t, e.Entity())
		ZoneDestroyed.Publish(t.World, ev)
	}
}

// UpdateSwings advances the visual attached to each zone.
func UpdateSwings(t *Tick) {
	dt := float32(t.Seconds())
	components.Swing.Each(t.World, func(e *donburi.Entry) {
		swing := components.Swing.Get(e)
		if swing.Tween == nil {
			return
		}
		swing.Progress, _ = swing.Tween.Update(dt)
		if swing.Frames > 0 {
			swing.Frame = min(int(swing.Progress*float32(swing.Frames)), swing.Frames-1)
		}
	})
}

// UpdateContactDamage drains health from every hurtbox a contact damage
// carrier touches, proportionally to the tick length.
func UpdateContactDamage(t *Tick) {
	components.ContactDamage.Each(t.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) || !e.HasComponent(components.Object) {
			return
		}
		contact := components.ContactDamage.Get(e)
		body := components.Body.Get(e)
		obj := components.Object.Get(e).Object

		for _, hurtbox := range OverlappingHurtboxes(obj, body.Placement(), contact.Layers) {
			target := damageTarget(t, hurtbox)
			if target == nil || target.Entity() == e.Entity() {
				continue
			}
			t.Damage = append(t.Damage, DamageEvent{
				Amount: contact.PerSecond * t.Seconds(),
				Target: target.Entity(),
				Source: e.Entity(),
			})
		}
	})
}

// damageTarget resolves the entity that takes damage for a hurtbox: the
// hurtbox itself when it has health, otherwise its parent.
func damageTarget(t *Tick, hurtbox *donburi.Entry) *donburi.Entry {
	if hurtbox.HasComponent(components.Health) {
		return hurtbox
	}
	if !hurtbox.HasComponent(components.Parent) {
		return nil
	}
	parent := t.entry(components.Parent.Get(hurtbox).Entity)
	if parent == nil || !parent.HasComponent(components.Health) {
		return nil
	}
	return parent
}
