package factory

import (
	"github.com/automoto/xdash/archetypes"
	"github.com/automoto/xdash/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// addObstacle registers obj with the space and stamps the entry with its
// insertion order.
func addObstacle(w donburi.World, entry *donburi.Entry, obj *resolv.Object) {
	order := 0
	if spaceEntry, ok := components.Space.First(w); ok {
		space := components.Space.Get(spaceEntry)
		order = space.NextOrder()
		space.Add(obj)
	}
	components.Obstacle.SetValue(entry, components.ObstacleData{Order: order})
}
