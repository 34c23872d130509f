package components

import "github.com/yohamta/donburi"

// MovementData drives a body's velocity from its intent while Enabled.
type MovementData struct {
	Enabled bool
	Speed   float64
}

func (m *MovementData) ToggleControl(enabled bool) {
	m.Enabled = enabled
}

var Movement = donburi.NewComponentType[MovementData]()
