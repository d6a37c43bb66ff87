package factory

import (
	"github.com/automoto/xdash/archetypes"
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/yohamta/donburi"
)

func CreateViewport(w donburi.World, offsetX float64) *donburi.Entry {
	viewport := archetypes.Viewport.Spawn(w)
	components.Viewport.SetValue(viewport, components.ViewportData{
		OffsetX:     offsetX,
		ScrollArea:  cfg.Viewport.ScrollAreaWidth,
		ScreenWidth: float64(cfg.C.Width),
	})
	return viewport
}

func CreateInput(w donburi.World) *donburi.Entry {
	return archetypes.Input.Spawn(w)
}

func CreateSettings(w donburi.World) *donburi.Entry {
	settings := archetypes.Settings.Spawn(w)
	components.Settings.SetValue(settings, components.SettingsData{
		Debug:   cfg.Debug.Enabled,
		ShowHUD: cfg.Debug.ShowHUD,
	})
	return settings
}
