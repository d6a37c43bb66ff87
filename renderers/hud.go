package renderers

import (
	"fmt"

	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/automoto/xdash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD prints the character name and the measured tick rate.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok || !components.Settings.Get(settingsEntry).ShowHUD {
		return
	}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	face := fonts.Small.Get()
	label := fmt.Sprintf("%s  %.0f TPS", player.Character, ebiten.ActualTPS())
	text.Draw(screen, label, face, hudMargin, hudMargin+12, cfg.White)
}
