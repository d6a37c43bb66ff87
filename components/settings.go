package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug   bool // Collision outlines and body readout
	ShowHUD bool
	Ticks   int // Simulation ticks run so far
}

var Settings = donburi.NewComponentType[SettingsData]()
