package factory

import (
	"fmt"

	"github.com/automoto/xdash/archetypes"
	"github.com/automoto/xdash/assets/animations"
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/automoto/xdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer creates the player at (x, y) facing left. The table must hold
// every key the animation selector can pick.
func CreatePlayer(w donburi.World, x, y float64, character string, table animations.Table) (*donburi.Entry, error) {
	if err := table.Validate(animations.RequiredKeys()); err != nil {
		return nil, fmt.Errorf("player %s: %w", character, err)
	}

	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{Character: character})
	components.Physics.SetValue(player, components.PhysicsData{Facing: animations.Left})

	anim := components.Animation.Get(player)
	anim.Table = table

	// Show the first idle frame so the player has a mask before the first tick.
	key := animations.SelectKey(components.Physics.Get(player).Pose(), cfg.Physics.Gravity)
	anim.SetAnimation(key)
	sprite := components.Sprite.Get(player)
	sprite.SetImage(table.Get(key)[0])
	components.Object.Get(player).Resize(sprite.Size())

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player, nil
}
