package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SwingData is the visual attached to a damage zone. Renderers read Frame.
type SwingData struct {
	Tween    *gween.Tween
	Progress float32 // 0..1 over the zone lifetime
	Frames   int
	Frame    int
}

var Swing = donburi.NewComponentType[SwingData]()
