package systems

import (
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/yohamta/donburi"
)

// UpdateFire runs fire scripts and advances every fire's animation.
func UpdateFire(w donburi.World) {
	components.Fire.Each(w, func(e *donburi.Entry) {
		fire := components.Fire.Get(e)

		if e.HasComponent(components.FireScript) {
			script := components.FireScript.Get(e)
			if script.Timer != nil {
				if _, done := script.Timer.Update(1); done {
					fire.Toggle()
					fire.Counter = 0
					script.Timer.Reset()
				}
			}
		}

		sprite := components.Sprite.Get(e)
		sprite.SetImage(fire.Advance(cfg.Fire.AnimationDelay))
		components.Object.Get(e).Resize(sprite.Size())
	})
}
