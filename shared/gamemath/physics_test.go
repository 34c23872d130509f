package gamemath

import (
	"math"
	"testing"

	math2 "github.com/yohamta/donburi/features/math"
)

const tolerance = 1e-9

func vecNear(a, b math2.Vec2) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

func TestRejectFromNormalized(t *testing.T) {
	got := RejectFromNormalized(math2.Vec2{X: 3, Y: -4}, math2.Vec2{Y: 1})
	if !vecNear(got, math2.Vec2{X: 3}) {
		t.Fatalf("expected (3,0), got %v", got)
	}
}

func TestNormalizeOrZero(t *testing.T) {
	if got := NormalizeOrZero(math2.Vec2{}); got != (math2.Vec2{}) {
		t.Fatalf("zero vector should stay zero, got %v", got)
	}
	got := NormalizeOrZero(math2.Vec2{X: 0, Y: -5})
	if !vecNear(got, math2.Vec2{Y: -1}) {
		t.Fatalf("expected (0,-1), got %v", got)
	}
}

func TestRotateToward(t *testing.T) {
	cases := []struct {
		name     string
		v        math2.Vec2
		target   math2.Vec2
		maxAngle float64
		want     math2.Vec2
	}{
		{"clamped_ccw", math2.Vec2{X: 2}, math2.Vec2{Y: 1}, math.Pi / 4, math2.Vec2{X: math.Sqrt2, Y: math.Sqrt2}},
		{"clamped_cw", math2.Vec2{X: 1}, math2.Vec2{Y: -1}, math.Pi / 4, math2.Vec2{X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2}},
		{"reaches_target", math2.Vec2{X: 1}, math2.Vec2{Y: 3}, math.Pi, math2.Vec2{Y: 1}},
		{"zero_target", math2.Vec2{X: 1}, math2.Vec2{}, math.Pi, math2.Vec2{X: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RotateToward(c.v, c.target, c.maxAngle)
			if !vecNear(got, c.want) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestSignedAngle(t *testing.T) {
	got := SignedAngle(math2.Vec2{X: 1}, math2.Vec2{Y: -1})
	if math.Abs(got+math.Pi/2) > tolerance {
		t.Fatalf("expected -pi/2, got %f", got)
	}
}

func TestClampLength(t *testing.T) {
	got := ClampLength(math2.Vec2{X: 3, Y: 4}, 1)
	if !vecNear(got, math2.Vec2{X: 0.6, Y: 0.8}) {
		t.Fatalf("expected (0.6,0.8), got %v", got)
	}
	short := math2.Vec2{X: 0.1}
	if got := ClampLength(short, 1); got != short {
		t.Fatalf("short vector should be unchanged, got %v", got)
	}
}
