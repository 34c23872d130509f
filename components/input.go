package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Action identifies an edge-triggered ability button.
type Action int

const (
	ActionDash Action = iota
	ActionAttack
	ActionCount
)

// IntentData stores what an entity wants to do this tick. Input layers (or
// behaviours) write Move, Look and Current; Previous holds last tick's held
// state so presses are reported once.
type IntentData struct {
	Move     math.Vec2 // clamped to unit length
	Look     math.Vec2
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// JustPressed reports the rising edge of a.
func (i *IntentData) JustPressed(a Action) bool {
	return i.Current[a] && !i.Previous[a]
}

// Latch makes this tick's held state the baseline for the next edge check.
func (i *IntentData) Latch() {
	i.Previous = i.Current
}

var Intent = donburi.NewComponentType[IntentData]()
