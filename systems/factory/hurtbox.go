package factory

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
)

// CreateHurtbox attaches a circular damage sensor to parent. The caller
// records it in the parent's Children.
func CreateHurtbox(w donburi.World, parent *donburi.Entry, radius float64, layers components.Layers) *donburi.Entry {
	hurtbox := archetypes.Hurtbox.Spawn(w)

	components.Body.SetValue(hurtbox, components.BodyData{
		Position: components.Body.Get(parent).Position,
		Kind:     components.Kinematic,
		Shape:    gamemath.Circle(radius),
		Layers:   layers,
		Sensor:   true,
	})
	components.Parent.SetValue(hurtbox, components.ParentData{Entity: parent.Entity()})
	attachObject(w, hurtbox, tags.ResolvHurtbox)

	return hurtbox
}
