package archetypes

import (
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Object,
		components.Movement,
		components.Intent,
		components.Health,
		components.Dash,
		components.Attack,
		components.Children,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Body,
		components.Object,
		components.Movement,
		components.Intent,
		components.Health,
		components.Follow,
		components.ContactDamage,
		components.Children,
	)
	Hurtbox = newArchetype(
		tags.Hurtbox,
		components.Hurtbox,
		components.Body,
		components.Object,
		components.Parent,
	)
	DamageZone = newArchetype(
		tags.DamageZone,
		components.DamageZone,
		components.Body,
		components.Object,
		components.Children,
	)
	Swing = newArchetype(
		components.Swing,
		components.Parent,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
