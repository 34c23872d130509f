package systems

import (
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateDash advances every dash timer, starts dashes on a fresh request and
// lets the dash take over the body's velocity while it runs.
func UpdateDash(t *Tick) {
	components.Dash.Each(t.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Movement) || !e.HasComponent(components.Body) {
			return
		}
		dash := components.Dash.Get(e)
		movement := components.Movement.Get(e)
		body := components.Body.Get(e)

		before := dash.State.Phase
		dash.Advance(t.Delta)
		publishDashChange(t, e, before, dash.State.Phase)

		if e.HasComponent(components.Intent) && components.Intent.Get(e).JustPressed(components.ActionDash) {
			before = dash.State.Phase
			if dash.Request() {
				publishDashChange(t, e, before, dash.State.Phase)
			}
		}

		switch dash.State.Phase {
		case components.DashDashing:
			movement.ToggleControl(false)
			body.Velocity = dashVelocity(dash, body.Velocity)
		case components.DashLanding:
			movement.ToggleControl(false)
			body.Velocity = math.Vec2{}
		case components.DashOnCooldown, components.DashReady:
			movement.ToggleControl(true)
		}
	})
}

func publishDashChange(t *Tick, e *donburi.Entry, from, to components.DashPhase) {
	if from == to {
		return
	}
	DashStateChanged.Publish(t.World, DashStateChangedEvent{
		Entity: e.Entity(),
		From:   from,
		To:     to,
	})
}

// dashVelocity steers v toward the dash heading at full dash speed. A body
// that is barely moving snaps straight onto the heading.
func dashVelocity(dash *components.DashData, v math.Vec2) math.Vec2 {
	if gamemath.Length(v) < cfg.Dash.SnapSpeed {
		return dash.LastDirection.MulScalar(dash.Speed)
	}
	turned := gamemath.RotateToward(v, dash.LastDirection, dash.TurnRate)
	return gamemath.NormalizeOrZero(turned).MulScalar(dash.Speed)
}
