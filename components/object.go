package components

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's world rectangle. The embedded resolv object is
// also its proxy in the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

func (o ObjectData) Left() float64   { return o.X }
func (o ObjectData) Right() float64  { return o.X + o.W }
func (o ObjectData) Top() float64    { return o.Y }
func (o ObjectData) Bottom() float64 { return o.Y + o.H }

// Pixel returns the whole-pixel position used for mask tests and drawing.
func (o ObjectData) Pixel() (int, int) {
	return int(math.Floor(o.X)), int(math.Floor(o.Y))
}

// Resize changes the size keeping the top-left corner and re-registers the
// proxy with the space.
func (o ObjectData) Resize(w, h float64) {
	if o.W == w && o.H == h {
		return
	}
	o.W, o.H = w, h
	o.Update()
}

// MoveTo sets the top-left corner and re-registers the proxy.
func (o ObjectData) MoveTo(x, y float64) {
	o.X, o.Y = x, y
	o.Update()
}
