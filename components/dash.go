package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DashPhase is the variant of a DashState.
type DashPhase int

const (
	DashReady DashPhase = iota
	DashDashing
	DashLanding
	DashOnCooldown
)

func (p DashPhase) String() string {
	switch p {
	case DashReady:
		return "ready"
	case DashDashing:
		return "dashing"
	case DashLanding:
		return "landing"
	case DashOnCooldown:
		return "on_cooldown"
	}
	return "unknown"
}

// DashState is one of Ready, Dashing, Landing or OnCooldown. Remaining is
// only meaningful for the three timed variants.
type DashState struct {
	Phase     DashPhase
	Remaining time.Duration
}

type DashData struct {
	State           DashState
	Speed           float64
	Duration        time.Duration
	LandingDuration time.Duration
	Cooldown        time.Duration
	TurnRate        float64   // max radians the dash heading turns per tick
	LastDirection   math.Vec2 // last non-negligible movement intent, unit length
}

// Advance counts the active timer down by dt, saturating at zero, and moves
// to the next variant once it runs out.
func (d *DashData) Advance(dt time.Duration) {
	switch d.State.Phase {
	case DashDashing:
		if d.countDown(dt) {
			d.State = DashState{Phase: DashLanding, Remaining: d.LandingDuration}
		}
	case DashLanding:
		if d.countDown(dt) {
			d.State = DashState{Phase: DashOnCooldown, Remaining: d.Cooldown}
		}
	case DashOnCooldown:
		if d.countDown(dt) {
			d.State = DashState{Phase: DashReady}
		}
	case DashReady:
	}
}

func (d *DashData) countDown(dt time.Duration) bool {
	d.State.Remaining -= dt
	if d.State.Remaining <= 0 {
		d.State.Remaining = 0
		return true
	}
	return false
}

// Request starts a dash. Requests outside Ready are ignored.
func (d *DashData) Request() bool {
	if d.State.Phase != DashReady {
		return false
	}
	d.State = DashState{Phase: DashDashing, Remaining: d.Duration}
	return true
}

// OverridesMovement reports whether the dash currently owns the velocity.
func (d *DashData) OverridesMovement() bool {
	switch d.State.Phase {
	case DashDashing, DashLanding:
		return true
	case DashReady, DashOnCooldown:
		return false
	}
	return false
}

var Dash = donburi.NewComponentType[DashData]()
