package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/yohamta/donburi"
)

// SpawnAttackZones creates a damage zone in front of every attacker whose
// attack was pressed this tick.
func SpawnAttackZones(t *Tick) {
	var attackers []*donburi.Entry
	components.Attack.Each(t.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Intent) || !e.HasComponent(components.Body) {
			return
		}
		if components.Intent.Get(e).JustPressed(components.ActionAttack) {
			attackers = append(attackers, e)
		}
	})

	for _, e := range attackers {
		attack := components.Attack.Get(e)
		facing := attack.Facing
		if gamemath.LengthSquared(facing) == 0 {
			facing = gamemath.Right
		}
		centre := components.Body.Get(e).Position.Add(facing.MulScalar(attack.Reach))
		rotation := gamemath.Angle(facing)

		zone := factory.CreateDamageZone(t.World, e.Entity(), centre, rotation, attack)
		ZoneSpawned.Publish(t.World, ZoneEvent{
			Zone:     zone.Entity(),
			Emitter:  e.Entity(),
			Position: centre,
			Rotation: rotation,
		})
	}
}
