package systems

import (
	"testing"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestUpdateIntentsDrivesVelocity(t *testing.T) {
	cases := []struct {
		name    string
		enabled bool
		move    math.Vec2
		want    math.Vec2
	}{
		{"enabled", true, math.Vec2{X: 1}, math.Vec2{X: 200}},
		{"clamped_to_unit", true, math.Vec2{X: 3, Y: 4}, math.Vec2{X: 120, Y: 160}},
		{"idle_stops", true, math.Vec2{}, math.Vec2{}},
		{"disabled_keeps_velocity", false, math.Vec2{X: 1}, math.Vec2{Y: 50}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t)
			player := factory.CreatePlayer(w, 100, 100)
			body(player).Velocity = math.Vec2{Y: 50}
			components.Movement.Get(player).Enabled = c.enabled
			components.Intent.Get(player).Move = c.move

			UpdateIntents(NewTick(w, tickLen))

			vecNear(t, c.want, body(player).Velocity)
		})
	}
}

func TestRecordDashDirection(t *testing.T) {
	cases := []struct {
		name string
		move math.Vec2
		want math.Vec2
	}{
		{"records_normalized", math.Vec2{X: 0, Y: -0.5}, math.Vec2{Y: -1}},
		{"ignores_small_intent", math.Vec2{X: 0.1, Y: 0.1}, math.Vec2{X: 1}},
		{"ignores_zero", math.Vec2{}, math.Vec2{X: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dash := &components.DashData{LastDirection: math.Vec2{X: 1}}
			RecordDashDirection(dash, &components.IntentData{Move: c.move})
			vecNear(t, c.want, dash.LastDirection)
		})
	}
}

func TestFollowersSteerTowardTarget(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 400, 100)
	far := factory.CreateEnemy(w, 100, 100, player.Entity())
	near := factory.CreateEnemy(w, 401, 101, player.Entity())
	orphan := factory.CreateEnemy(w, 200, 200, donburi.Null)

	UpdateIntents(NewTick(w, tickLen))

	vecNear(t, math.Vec2{X: 1}, components.Intent.Get(far).Move)
	vecNear(t, math.Vec2{X: 100}, body(far).Velocity)

	// Squared distance 2 is within the stop distance of 5.
	assert.Equal(t, math.Vec2{}, components.Intent.Get(near).Move)
	assert.Equal(t, math.Vec2{}, components.Intent.Get(orphan).Move)
}
