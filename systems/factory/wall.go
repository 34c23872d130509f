package factory

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateWall adds a static level boundary whose top-left corner is at x, y.
func CreateWall(w donburi.World, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	components.Body.SetValue(wall, components.BodyData{
		Position: math.Vec2{X: x + width/2, Y: y + height/2},
		Kind:     components.Static,
		Shape:    gamemath.Rectangle(width, height),
		Layers: components.Layers{
			Member: cfg.LayerLevelBounds,
			Filter: cfg.LayerEnemies | cfg.LayerPlayerMovement,
		},
	})
	attachObject(w, wall, tags.ResolvSolid)

	return wall
}
