package components

import (
	"github.com/automoto/xdash/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Table    animations.Table
	Current  string // Key shown this tick
	Previous string
}

var Animation = donburi.NewComponentType[AnimationData]()

// SetAnimation records key as the current animation.
func (a *AnimationData) SetAnimation(key string) {
	if a.Current == key {
		return
	}
	a.Previous = a.Current
	a.Current = key
}
