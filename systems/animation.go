package systems

import (
	"github.com/automoto/xdash/assets/animations"
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimations picks each player's animation from its motion, shows the
// frame for this tick and fits the rectangle and mask to it. The top-left
// corner stays put.
func UpdateAnimations(w donburi.World) {
	components.Animation.Each(w, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		physics := components.Physics.Get(e)
		sprite := components.Sprite.Get(e)

		key := animations.SelectKey(physics.Pose(), cfg.Physics.Gravity)
		anim.SetAnimation(key)

		sprite.SetImage(anim.Table.Get(key).Frame(physics.AnimFrame, cfg.Physics.AnimationDelay))
		physics.AnimFrame++

		components.Object.Get(e).Resize(sprite.Size())
	})
}
