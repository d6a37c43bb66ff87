package systems

import (
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/automoto/xdash/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer turns this tick's input into velocity. Jumps fire on the key
// down edge. Horizontal speed is reset every tick and only committed when the
// probe on that side found nothing.
func UpdatePlayer(w donburi.World) {
	inputEntry, ok := components.Input.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	tags.Player.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		player := components.Player.Get(e)

		if input.Action(cfg.ActionJump).JustPressed && physics.CanJump(cfg.Physics.MaxJumps) {
			physics.Jump(cfg.Physics.Gravity, cfg.Physics.JumpImpulse, cfg.Physics.MaxJumps)
		}

		physics.VX = 0
		// The probes look ProbeFactor ticks of movement ahead.
		reach := cfg.Player.Velocity * cfg.Player.ProbeFactor
		player.Contacts.Left = Probe(e, -reach)
		player.Contacts.Right = Probe(e, reach)

		if input.Action(cfg.ActionMoveLeft).Pressed && player.Contacts.Left == nil {
			physics.MoveLeft(cfg.Player.Velocity)
		}
		// Right wins when both are held.
		if input.Action(cfg.ActionMoveRight).Pressed && player.Contacts.Right == nil {
			physics.MoveRight(cfg.Player.Velocity)
		}
	})
}
