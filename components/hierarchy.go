package components

import "github.com/yohamta/donburi"

// ParentData points from a sub-entity (hurtbox, visual) to its owner.
type ParentData struct {
	Entity donburi.Entity
}

// ChildrenData lists the sub-entities destroyed together with the owner.
type ChildrenData struct {
	Entities []donburi.Entity
}

var Parent = donburi.NewComponentType[ParentData]()
var Children = donburi.NewComponentType[ChildrenData]()
