package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionJump:      "jump",
	ActionDebug:     "debug",
	ActionQuit:      "quit",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputBinding represents the keys and buttons bound to an action.
// Keys are ebiten key names ("A", "ArrowLeft", "Space"), so this package
// stays free of ebiten and the simulation can run headless.
type InputBinding struct {
	Keys           []string `toml:"keys"`
	GamepadButtons []string `toml:"gamepad_buttons"`
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:           []string{"A", "ArrowLeft"},
				GamepadButtons: []string{"LeftLeft"},
			},
			ActionMoveRight: {
				Keys:           []string{"D", "ArrowRight"},
				GamepadButtons: []string{"LeftRight"},
			},
			ActionJump: {
				Keys:           []string{"Space"},
				GamepadButtons: []string{"RightBottom"},
			},
			ActionDebug: {
				Keys: []string{"F1"},
			},
			ActionQuit: {
				Keys:           []string{"Escape"},
				GamepadButtons: []string{"CenterRight"},
			},
		},
	}
}

// ActionByName looks up an action by its config name.
func ActionByName(name string) (ActionID, bool) {
	for i, n := range actionNames {
		if n == name && ActionID(i) != ActionNone {
			return ActionID(i), true
		}
	}
	return ActionNone, false
}
