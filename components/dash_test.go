package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDash() *DashData {
	return &DashData{
		State:           DashState{Phase: DashReady},
		Speed:           600,
		Duration:        200 * time.Millisecond,
		LandingDuration: 100 * time.Millisecond,
		Cooldown:        2 * time.Second,
	}
}

func TestDashCycle(t *testing.T) {
	d := newTestDash()

	require.True(t, d.Request())
	assert.Equal(t, DashState{Phase: DashDashing, Remaining: 200 * time.Millisecond}, d.State)

	d.Advance(150 * time.Millisecond)
	assert.Equal(t, DashState{Phase: DashDashing, Remaining: 50 * time.Millisecond}, d.State)

	d.Advance(50 * time.Millisecond)
	assert.Equal(t, DashState{Phase: DashLanding, Remaining: 100 * time.Millisecond}, d.State)

	d.Advance(100 * time.Millisecond)
	assert.Equal(t, DashState{Phase: DashOnCooldown, Remaining: 2 * time.Second}, d.State)

	d.Advance(2 * time.Second)
	assert.Equal(t, DashState{Phase: DashReady}, d.State)
}

func TestDashAdvanceMovesOneStatePerCall(t *testing.T) {
	d := newTestDash()
	d.Request()

	// A step longer than every timer combined still only ends the dash.
	d.Advance(10 * time.Second)
	assert.Equal(t, DashLanding, d.State.Phase)
	assert.Equal(t, 100*time.Millisecond, d.State.Remaining)
}

func TestDashRequestIgnoredOutsideReady(t *testing.T) {
	cases := []struct {
		name  string
		state DashState
	}{
		{"dashing", DashState{Phase: DashDashing, Remaining: 120 * time.Millisecond}},
		{"landing", DashState{Phase: DashLanding, Remaining: 40 * time.Millisecond}},
		{"on_cooldown", DashState{Phase: DashOnCooldown, Remaining: time.Second}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := newTestDash()
			d.State = c.state

			assert.False(t, d.Request())
			assert.Equal(t, c.state, d.State)
		})
	}
}

func TestDashReadyIgnoresTime(t *testing.T) {
	d := newTestDash()
	d.Advance(time.Hour)
	assert.Equal(t, DashState{Phase: DashReady}, d.State)
}

func TestDashOverridesMovement(t *testing.T) {
	cases := []struct {
		phase DashPhase
		want  bool
	}{
		{DashReady, false},
		{DashDashing, true},
		{DashLanding, true},
		{DashOnCooldown, false},
	}

	for _, c := range cases {
		t.Run(c.phase.String(), func(t *testing.T) {
			d := newTestDash()
			d.State.Phase = c.phase
			assert.Equal(t, c.want, d.OverridesMovement())
		})
	}
}
