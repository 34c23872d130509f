package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Percentage returns Current/Max. Max is expected to be positive.
func (h *HealthData) Percentage() float64 {
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
