package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// epsilon below which a vector is treated as zero length.
const epsilon = 1e-9

// Right is the default facing, the +X axis.
var Right = math2.Vec2{X: 1}

// Dot returns the dot product of a and b.
func Dot(a, b math2.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product of a and b.
func Cross(a, b math2.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// LengthSquared returns |v|².
func LengthSquared(v math2.Vec2) float64 {
	return Dot(v, v)
}

// Length returns |v|.
func Length(v math2.Vec2) float64 {
	return math.Sqrt(LengthSquared(v))
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// is too short to have a direction.
func NormalizeOrZero(v math2.Vec2) math2.Vec2 {
	l := Length(v)
	if l < epsilon {
		return math2.Vec2{}
	}
	return math2.Vec2{X: v.X / l, Y: v.Y / l}
}

// ClampLength shortens v to at most max, keeping its direction.
func ClampLength(v math2.Vec2, max float64) math2.Vec2 {
	if LengthSquared(v) <= max*max {
		return v
	}
	return NormalizeOrZero(v).MulScalar(max)
}

// RejectFromNormalized removes the component of v along the unit vector n,
// leaving the part of v that slides along the surface n describes.
func RejectFromNormalized(v, n math2.Vec2) math2.Vec2 {
	return v.Sub(n.MulScalar(Dot(v, n)))
}

// Rotate turns v counter-clockwise by angle radians.
func Rotate(v math2.Vec2, angle float64) math2.Vec2 {
	sin, cos := math.Sincos(angle)
	return math2.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the angle of v measured from the +X axis.
func Angle(v math2.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// SignedAngle returns the shortest signed angle that turns from onto to.
func SignedAngle(from, to math2.Vec2) float64 {
	return math.Atan2(Cross(from, to), Dot(from, to))
}

// RotateToward turns v toward target by at most maxAngle radians. The
// returned vector keeps the length of v.
func RotateToward(v, target math2.Vec2, maxAngle float64) math2.Vec2 {
	if LengthSquared(target) < epsilon {
		return v
	}
	angle := ClampFloat(SignedAngle(v, target), -maxAngle, maxAngle)
	return Rotate(v, angle)
}

// ClampFloat clamps value to [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
