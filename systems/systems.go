package systems

import (
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/yohamta/donburi"
)

// System advances one concern of the world by one tick.
type System func(w donburi.World)

// Simulation is the fixed per-tick order. The probes in UpdatePlayer see the
// position from before this tick's move.
var Simulation = []System{
	UpdateSettings,
	UpdatePlayer,
	UpdatePhysics,
	UpdateCollisions,
	UpdateAnimations,
	UpdateFire,
	UpdateViewport,
}

// Tick runs the whole simulation once.
func Tick(w donburi.World) {
	for _, s := range Simulation {
		s(w)
	}
}

// Step samples pressed as this tick's input and runs one tick. It drives the
// world headless.
func Step(w donburi.World, pressed [cfg.ActionCount]bool) {
	if entry, ok := components.Input.First(w); ok {
		components.Input.Get(entry).Sample(pressed)
	}
	Tick(w)
}
