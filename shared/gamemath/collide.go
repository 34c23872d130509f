package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Contact describes how two placed shapes touch. Normal points from the
// first shape toward the second. Penetration is the overlap along Normal;
// zero or negative values mean the shapes are apart by that distance.
type Contact struct {
	Normal      math2.Vec2
	Point       math2.Vec2
	Penetration float64
}

// Collide computes the contact between a and b. It reports false when the
// shapes are further apart than margin.
func Collide(a, b Placement, margin float64) (Contact, bool) {
	var c Contact
	switch {
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeCircle:
		c = circleCircle(a, b)
	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapeCircle:
		c = boxCircle(a, b)
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeBox:
		c = boxCircle(b, a)
		c.Normal = c.Normal.MulScalar(-1)
	default:
		c = boxBox(a, b)
	}
	if c.Penetration < -margin {
		return Contact{}, false
	}
	return c, true
}

// Overlaps reports whether a and b share any area.
func Overlaps(a, b Placement) bool {
	c, ok := Collide(a, b, 0)
	return ok && c.Penetration > 0
}

func circleCircle(a, b Placement) Contact {
	d := b.Position.Sub(a.Position)
	dist := Length(d)
	n := math2.Vec2{X: 1}
	if dist > epsilon {
		n = d.MulScalar(1 / dist)
	}
	pen := a.Shape.Radius + b.Shape.Radius - dist
	return Contact{
		Normal:      n,
		Point:       a.Position.Add(n.MulScalar(a.Shape.Radius - pen/2)),
		Penetration: pen,
	}
}

// boxCircle collides box a with circle b; the normal points toward b.
func boxCircle(a, b Placement) Contact {
	local := Rotate(b.Position.Sub(a.Position), -a.Rotation)
	hw, hh := a.Shape.HalfW, a.Shape.HalfH
	closest := math2.Vec2{
		X: ClampFloat(local.X, -hw, hw),
		Y: ClampFloat(local.Y, -hh, hh),
	}

	var nLocal math2.Vec2
	var pen float64
	diff := local.Sub(closest)
	if dist := Length(diff); dist > epsilon {
		nLocal = diff.MulScalar(1 / dist)
		pen = b.Shape.Radius - dist
	} else {
		// Centre inside the box: push out through the nearest face.
		dx := hw - math.Abs(local.X)
		dy := hh - math.Abs(local.Y)
		if dx < dy {
			nLocal = math2.Vec2{X: sign(local.X)}
			closest.X = sign(local.X) * hw
			pen = b.Shape.Radius + dx
		} else {
			nLocal = math2.Vec2{Y: sign(local.Y)}
			closest.Y = sign(local.Y) * hh
			pen = b.Shape.Radius + dy
		}
	}

	return Contact{
		Normal:      Rotate(nLocal, a.Rotation),
		Point:       a.Position.Add(Rotate(closest, a.Rotation)),
		Penetration: pen,
	}
}

// boxBox runs the separating axis test over both boxes' face normals and
// keeps the axis of least overlap.
func boxBox(a, b Placement) Contact {
	ax, ay := a.axes()
	bx, by := b.axes()
	d := b.Position.Sub(a.Position)

	best := math.Inf(1)
	var normal math2.Vec2
	for _, axis := range [4]math2.Vec2{ax, ay, bx, by} {
		dist := Dot(d, axis)
		overlap := a.projectedRadius(axis) + b.projectedRadius(axis) - math.Abs(dist)
		if overlap < best {
			best = overlap
			normal = axis
			if dist < 0 {
				normal = axis.MulScalar(-1)
			}
		}
	}

	return Contact{
		Normal:      normal,
		Point:       supportPoint(b, normal.MulScalar(-1)),
		Penetration: best,
	}
}

// supportPoint averages the corners of box p that reach furthest along dir.
func supportPoint(p Placement, dir math2.Vec2) math2.Vec2 {
	corners := p.corners()
	best := math.Inf(-1)
	for _, c := range corners {
		best = math.Max(best, Dot(c, dir))
	}

	var sum math2.Vec2
	count := 0.0
	for _, c := range corners {
		if best-Dot(c, dir) < 1e-6 {
			sum = sum.Add(c)
			count++
		}
	}
	return sum.MulScalar(1 / count)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
