package components

import (
	"github.com/automoto/xdash/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Assets       *assets.Pack
}

var Level = donburi.NewComponentType[LevelData]()
