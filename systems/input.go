package systems

import (
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateIntents runs the input phase: followers steer toward their target,
// dash and attack directions are recorded, and controlled bodies take their
// velocity from the movement intent.
func UpdateIntents(t *Tick) {
	updateFollowers(t)

	components.Intent.Each(t.World, func(e *donburi.Entry) {
		intent := components.Intent.Get(e)
		intent.Move = gamemath.ClampLength(intent.Move, 1)

		if e.HasComponent(components.Dash) {
			RecordDashDirection(components.Dash.Get(e), intent)
		}
		if e.HasComponent(components.Attack) {
			recordFacing(components.Attack.Get(e), intent)
		}

		if !e.HasComponent(components.Movement) || !e.HasComponent(components.Body) {
			return
		}
		movement := components.Movement.Get(e)
		if movement.Enabled {
			components.Body.Get(e).Velocity = intent.Move.MulScalar(movement.Speed)
		}
	})
}

// RecordDashDirection stores the movement intent as the dash heading when it
// is long enough to have a meaningful direction.
func RecordDashDirection(dash *components.DashData, intent *components.IntentData) {
	if gamemath.LengthSquared(intent.Move) > cfg.Movement.DirectionThreshold {
		dash.LastDirection = gamemath.NormalizeOrZero(intent.Move)
	}
}

func recordFacing(attack *components.AttackData, intent *components.IntentData) {
	if gamemath.LengthSquared(intent.Look) > cfg.Movement.DirectionThreshold {
		attack.Facing = gamemath.NormalizeOrZero(intent.Look)
	}
}

// updateFollowers points each follower's movement intent at its target and
// stops it once the squared distance drops to UntilDistance.
func updateFollowers(t *Tick) {
	components.Follow.Each(t.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Intent) || !e.HasComponent(components.Body) {
			return
		}
		follow := components.Follow.Get(e)
		target := t.entry(follow.Target)
		if target == nil || !target.HasComponent(components.Body) {
			return
		}

		intent := components.Intent.Get(e)
		toTarget := components.Body.Get(target).Position.Sub(components.Body.Get(e).Position)
		if gamemath.LengthSquared(toTarget) <= follow.UntilDistance {
			intent.Move = math.Vec2{}
			return
		}
		intent.Move = gamemath.NormalizeOrZero(toTarget)
		intent.Look = intent.Move
	})
}

// LatchIntents closes the tick for edge detection.
func LatchIntents(t *Tick) {
	components.Intent.Each(t.World, func(e *donburi.Entry) {
		components.Intent.Get(e).Latch()
	})
}
