package components

import "github.com/yohamta/donburi"

// ViewportData is the horizontal scroll offset. Only the viewport system
// writes it; every renderer subtracts it.
type ViewportData struct {
	OffsetX     float64
	ScrollArea  float64 // Width of the trigger band at each screen edge
	ScreenWidth float64
}

var Viewport = donburi.NewComponentType[ViewportData]()
