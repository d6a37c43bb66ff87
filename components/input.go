package components

import (
	cfg "github.com/automoto/xdash/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// Sample shifts the current frame to Previous and stores the new snapshot.
func (i *InputData) Sample(pressed [cfg.ActionCount]bool) {
	i.Previous = i.Current
	i.Current = pressed
}

func (i *InputData) Action(id cfg.ActionID) ActionState {
	if id < 0 || id >= cfg.ActionCount {
		return ActionState{}
	}
	cur, prev := i.Current[id], i.Previous[id]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}
