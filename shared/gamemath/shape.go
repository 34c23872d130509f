package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// ShapeKind selects the collider geometry.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape is a collider centred on its body's position. Boxes are oriented by
// the body's rotation; circles ignore it.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // circle only
	HalfW  float64 // box only
	HalfH  float64 // box only
}

// Circle returns a circle collider of radius r.
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: r}
}

// Rectangle returns a box collider of full width w and height h.
func Rectangle(w, h float64) Shape {
	return Shape{Kind: ShapeBox, HalfW: w / 2, HalfH: h / 2}
}

// Placement is a shape posed in world space.
type Placement struct {
	Shape    Shape
	Position math2.Vec2
	Rotation float64
}

// Bounds returns the world-space axis aligned bounding box of p.
func (p Placement) Bounds() (minX, minY, maxX, maxY float64) {
	switch p.Shape.Kind {
	case ShapeBox:
		sin, cos := math.Sincos(p.Rotation)
		ex := math.Abs(cos)*p.Shape.HalfW + math.Abs(sin)*p.Shape.HalfH
		ey := math.Abs(sin)*p.Shape.HalfW + math.Abs(cos)*p.Shape.HalfH
		return p.Position.X - ex, p.Position.Y - ey, p.Position.X + ex, p.Position.Y + ey
	default:
		r := p.Shape.Radius
		return p.Position.X - r, p.Position.Y - r, p.Position.X + r, p.Position.Y + r
	}
}

// axes returns the box's local X and Y axes in world space.
func (p Placement) axes() (math2.Vec2, math2.Vec2) {
	sin, cos := math.Sincos(p.Rotation)
	return math2.Vec2{X: cos, Y: sin}, math2.Vec2{X: -sin, Y: cos}
}

// corners returns the four box corners in world space, counter-clockwise.
func (p Placement) corners() [4]math2.Vec2 {
	ux, uy := p.axes()
	hx := ux.MulScalar(p.Shape.HalfW)
	hy := uy.MulScalar(p.Shape.HalfH)
	c := p.Position
	return [4]math2.Vec2{
		c.Sub(hx).Sub(hy),
		c.Add(hx).Sub(hy),
		c.Add(hx).Add(hy),
		c.Sub(hx).Add(hy),
	}
}

// projectedRadius is the half length of the box's projection onto axis.
func (p Placement) projectedRadius(axis math2.Vec2) float64 {
	ux, uy := p.axes()
	return p.Shape.HalfW*math.Abs(Dot(axis, ux)) + p.Shape.HalfH*math.Abs(Dot(axis, uy))
}
