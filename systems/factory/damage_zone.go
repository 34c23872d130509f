package factory

import (
	"time"

	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/automoto/brawlcore/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateDamageZone spawns a melee zone for emitter. The zone is a 2r x r
// sensor rectangle centred at centre and turned by rotation, with a swing
// visual as its only child.
func CreateDamageZone(w donburi.World, emitter donburi.Entity, centre math.Vec2, rotation float64, attack *components.AttackData) *donburi.Entry {
	zone := archetypes.DamageZone.Spawn(w)

	components.Body.SetValue(zone, components.BodyData{
		Position: centre,
		Rotation: rotation,
		Kind:     components.Static,
		Shape:    gamemath.Rectangle(attack.Radius*2, attack.Radius),
		Layers:   attack.Layers,
		Sensor:   true,
	})
	attachObject(w, zone, tags.ResolvZone)

	components.DamageZone.SetValue(zone, components.DamageZoneData{
		Emitter:   emitter,
		Damage:    attack.Damage,
		Remaining: attack.Lifetime,
		Hit:       make(map[donburi.Entity]struct{}),
	})

	swing := CreateSwing(w, zone, attack.Lifetime)
	components.Children.SetValue(zone, components.ChildrenData{
		Entities: []donburi.Entity{swing.Entity()},
	})

	return zone
}

// CreateSwing attaches the swing visual to zone. Its tween runs from 0 to 1
// over lifetime.
func CreateSwing(w donburi.World, zone *donburi.Entry, lifetime time.Duration) *donburi.Entry {
	swing := archetypes.Swing.Spawn(w)
	components.Parent.SetValue(swing, components.ParentData{Entity: zone.Entity()})

	data := components.SwingData{Frames: cfg.Combat.SwingFrames}
	if lifetime > 0 {
		data.Tween = gween.New(0, 1, float32(lifetime.Seconds()), ease.Linear)
	}
	components.Swing.SetValue(swing, data)

	return swing
}
