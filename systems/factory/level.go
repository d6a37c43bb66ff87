package factory

import (
	"github.com/automoto/xdash/archetypes"
	"github.com/automoto/xdash/assets"
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World, level *assets.Level, pack *assets.Pack) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Assets:       pack,
	})
	return entry
}

// BuildWorld creates every entity for one session: singletons, the collision
// space, obstacles in level order and the player. It returns the player.
func BuildWorld(w donburi.World, level *assets.Level, pack *assets.Pack) (*donburi.Entry, error) {
	CreateSettings(w)
	CreateInput(w)
	CreateLevel(w, level, pack)

	bs := cfg.World.BlockSize
	CreateSpace(w, level.Width, level.Height, bs, bs)

	for _, b := range level.Blocks {
		CreateBlock(w, b.X, b.Y, pack.Block)
	}
	for _, f := range level.Fires {
		CreateFire(w, f.X, f.Y, pack.Fire, f.Lit, cfg.Fire.TogglePeriod)
	}

	x, y := cfg.Player.SpawnX+level.OriginX, cfg.Player.SpawnY
	if level.HasSpawn {
		x, y = level.PlayerSpawn.X, level.PlayerSpawn.Y
	}
	player, err := CreatePlayer(w, x, y, cfg.Player.Character, pack.Character)
	if err != nil {
		return nil, err
	}

	CreateViewport(w, level.OriginX)

	return player, nil
}
