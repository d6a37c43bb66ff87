package archetypes

import (
	"github.com/automoto/xdash/components"
	"github.com/automoto/xdash/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Sprite,
		components.Animation,
	)
	Block = newArchetype(
		tags.Block,
		components.Obstacle,
		components.Object,
		components.Sprite,
	)
	Fire = newArchetype(
		tags.Fire,
		tags.Hazard,
		components.Obstacle,
		components.Fire,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extra ones.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	return w.Entry(w.Create(append(all, cs...)...))
}
