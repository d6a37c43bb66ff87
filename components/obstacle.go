package components

import "github.com/yohamta/donburi"

// ObstacleData marks an entity the player collides with. Order is the
// world insertion index; collisions are resolved in that order.
type ObstacleData struct {
	Order int
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
