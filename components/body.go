package components

import (
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyKind classifies how a body is moved.
type BodyKind int

const (
	// Static bodies never move.
	Static BodyKind = iota
	// Kinematic bodies are moved by game logic and need manual collision
	// response.
	Kinematic
	// Dynamic bodies are moved and resolved by their own solver.
	Dynamic
)

func (k BodyKind) String() string {
	switch k {
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	case Dynamic:
		return "dynamic"
	}
	return "unknown"
}

// Layers pairs the layers a collider belongs to with the layers it accepts.
type Layers struct {
	Member uint32
	Filter uint32
}

// Interacts reports whether both sides accept each other.
func (l Layers) Interacts(other Layers) bool {
	return l.Member&other.Filter != 0 && other.Member&l.Filter != 0
}

type BodyData struct {
	Position math.Vec2
	Rotation float64
	Velocity math.Vec2
	Kind     BodyKind
	Shape    gamemath.Shape
	Layers   Layers
	Sensor   bool // overlaps are reported, no physical response
}

// Placement returns the collider posed at the body's transform.
func (b *BodyData) Placement() gamemath.Placement {
	return gamemath.Placement{Shape: b.Shape, Position: b.Position, Rotation: b.Rotation}
}

var Body = donburi.NewComponentType[BodyData]()
