package systems

import (
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates every body for one tick and moves it.
func UpdatePhysics(w donburi.World) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		dx, dy := physics.Integrate(cfg.Physics.TickRate, cfg.Physics.Gravity, cfg.HitFrames())
		obj.MoveTo(obj.X+dx, obj.Y+dy)
	})
}
