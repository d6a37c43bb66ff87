package systems

import (
	"github.com/automoto/xdash/archetypes"
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/yohamta/donburi"
)

// Settings returns the session settings, creating them from config on first
// use.
func Settings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		entry = archetypes.Settings.Spawn(w)
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:   cfg.Debug.Enabled,
			ShowHUD: cfg.Debug.ShowHUD,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug toggle and counts ticks.
func UpdateSettings(w donburi.World) {
	settings := Settings(w)
	settings.Ticks++

	inputEntry, ok := components.Input.First(w)
	if !ok {
		return
	}
	if components.Input.Get(inputEntry).Action(cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// QuitRequested reports whether the quit action went down this tick.
func QuitRequested(w donburi.World) bool {
	inputEntry, ok := components.Input.First(w)
	if !ok {
		return false
	}
	return components.Input.Get(inputEntry).Action(cfg.ActionQuit).JustPressed
}
