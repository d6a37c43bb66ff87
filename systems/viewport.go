package systems

import (
	"github.com/automoto/xdash/components"
	"github.com/yohamta/donburi"
)

// ScrollDelta returns how far the viewport follows a body spanning
// [left, right] that moves with horizontal speed vx. The viewport only
// scrolls while the body is inside the trigger band at the edge it is
// moving towards.
func ScrollDelta(v components.ViewportData, left, right, vx float64) float64 {
	if right-v.OffsetX >= v.ScreenWidth-v.ScrollArea && vx > 0 {
		return vx
	}
	if left-v.OffsetX <= v.ScrollArea && vx < 0 {
		return vx
	}
	return 0
}

// UpdateViewport scrolls the view to keep the player away from the screen
// edges.
func UpdateViewport(w donburi.World) {
	vpEntry, ok := components.Viewport.First(w)
	if !ok {
		return
	}
	viewport := components.Viewport.Get(vpEntry)

	components.Player.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)
		viewport.OffsetX += ScrollDelta(*viewport, obj.Left(), obj.Right(), physics.VX)
	})
}
