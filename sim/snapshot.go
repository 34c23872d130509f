package sim

import (
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// EntityState is the read-only view of one entity handed to renderers and
// UI after a step.
type EntityState struct {
	Entity    donburi.Entity
	Kind      string
	Position  math.Vec2
	Rotation  float64
	Health    float64
	MaxHealth float64
	Dash      components.DashPhase
}

// HealthPercentage returns Health/MaxHealth, or zero for entities without
// health.
func (e EntityState) HealthPercentage() float64 {
	if e.MaxHealth == 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}

// Snapshot returns the state of every player, enemy and damage zone.
func (s *Simulation) Snapshot() []EntityState {
	var out []EntityState
	collect := func(kind string) func(*donburi.Entry) {
		return func(e *donburi.Entry) {
			state := EntityState{Entity: e.Entity(), Kind: kind}
			if e.HasComponent(components.Body) {
				body := components.Body.Get(e)
				state.Position, state.Rotation = body.Position, body.Rotation
			}
			if e.HasComponent(components.Health) {
				hp := components.Health.Get(e)
				state.Health, state.MaxHealth = hp.Current, hp.Max
			}
			if e.HasComponent(components.Dash) {
				state.Dash = components.Dash.Get(e).State.Phase
			}
			out = append(out, state)
		}
	}

	tags.Player.Each(s.world, collect("player"))
	tags.Enemy.Each(s.world, collect("enemy"))
	tags.DamageZone.Each(s.world, collect("zone"))
	return out
}
