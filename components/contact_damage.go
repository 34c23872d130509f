package components

import "github.com/yohamta/donburi"

// ContactDamageData drains health from every hurtbox the carrier touches.
type ContactDamageData struct {
	PerSecond float64
	Layers    Layers
}

var ContactDamage = donburi.NewComponentType[ContactDamageData]()
