package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/xdash/assets"
	"github.com/automoto/xdash/renderers"
	"github.com/automoto/xdash/systems"
	"github.com/automoto/xdash/systems/factory"

	"github.com/automoto/xdash/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = iota

// PlatformerScene runs one level with one player.
type PlatformerScene struct {
	ecs      *ecs.ECS
	level    *assets.Level
	pack     *assets.Pack
	bindings *Bindings
	once     sync.Once
	err      error
}

func NewPlatformerScene(level *assets.Level, pack *assets.Pack, bindings *Bindings) *PlatformerScene {
	return &PlatformerScene{level: level, pack: pack, bindings: bindings}
}

// Update polls input and advances the world by one tick. It returns
// ebiten.Termination once quit is pressed.
func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}

	if entry, ok := components.Input.First(ps.ecs.World); ok {
		components.Input.Get(entry).Sample(ps.bindings.Poll())
	}
	if systems.QuitRequested(ps.ecs.World) {
		return ebiten.Termination
	}

	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// World exposes the scene's world, nil before the first Update.
func (ps *PlatformerScene) World() donburi.World {
	if ps.ecs == nil {
		return nil
	}
	return ps.ecs.World
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	for _, s := range systems.Simulation {
		ecs.AddSystem(adapt(s))
	}

	ecs.AddRenderer(layerDefault, renderers.DrawBackground)
	ecs.AddRenderer(layerDefault, renderers.DrawObstacles)
	ecs.AddRenderer(layerDefault, renderers.DrawPlayer)
	ecs.AddRenderer(layerDefault, renderers.DrawDebug)
	ecs.AddRenderer(layerDefault, renderers.DrawHUD)

	ps.ecs = ecs

	if _, err := factory.BuildWorld(ps.ecs.World, ps.level, ps.pack); err != nil {
		ps.err = err
	}
}

// adapt runs a world system as an ecs system.
func adapt(s systems.System) ecs.System {
	return func(e *ecs.ECS) { s(e.World) }
}
