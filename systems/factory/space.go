package factory

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject creates the broadphase object for e's body and adds it to the
// world's space, if there is one.
func attachObject(w donburi.World, e *donburi.Entry, tags ...string) *resolv.Object {
	body := components.Body.Get(e)
	minX, minY, maxX, maxY := body.Placement().Bounds()

	obj := resolv.NewObject(minX, minY, maxX-minX, maxY-minY, tags...)
	obj.Data = e // Linked for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
