package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Block  = donburi.NewTag().SetName("Block")
	Fire   = donburi.NewTag().SetName("Fire")
	// Hazard marks obstacles that hit the player on contact.
	Hazard = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvFire     = "fire"
	ResolvPlayer   = "Player"
	ResolvObstacle = "obstacle"
)
