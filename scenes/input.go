package scenes

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/xdash/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownButton = errors.New("unknown gamepad button")

var gamepadButtons = map[string]ebiten.StandardGamepadButton{
	"RightBottom":      ebiten.StandardGamepadButtonRightBottom,
	"RightRight":       ebiten.StandardGamepadButtonRightRight,
	"RightLeft":        ebiten.StandardGamepadButtonRightLeft,
	"RightTop":         ebiten.StandardGamepadButtonRightTop,
	"FrontTopLeft":     ebiten.StandardGamepadButtonFrontTopLeft,
	"FrontTopRight":    ebiten.StandardGamepadButtonFrontTopRight,
	"FrontBottomLeft":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"FrontBottomRight": ebiten.StandardGamepadButtonFrontBottomRight,
	"CenterLeft":       ebiten.StandardGamepadButtonCenterLeft,
	"CenterRight":      ebiten.StandardGamepadButtonCenterRight,
	"LeftStick":        ebiten.StandardGamepadButtonLeftStick,
	"RightStick":       ebiten.StandardGamepadButtonRightStick,
	"LeftTop":          ebiten.StandardGamepadButtonLeftTop,
	"LeftBottom":       ebiten.StandardGamepadButtonLeftBottom,
	"LeftLeft":         ebiten.StandardGamepadButtonLeftLeft,
	"LeftRight":        ebiten.StandardGamepadButtonLeftRight,
	"CenterCenter":     ebiten.StandardGamepadButtonCenterCenter,
}

type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

// Bindings are config input bindings resolved to ebiten keys and buttons.
type Bindings struct {
	actions  [cfg.ActionCount]binding
	deadzone float64
}

// ResolveBindings parses the key and button names in in.
func ResolveBindings(in cfg.InputConfig) (*Bindings, error) {
	b := &Bindings{deadzone: in.AnalogDeadzone}
	var errs []error
	for id, ib := range in.Bindings {
		if id <= cfg.ActionNone || id >= cfg.ActionCount {
			continue
		}
		for _, name := range ib.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", id, err))
				continue
			}
			b.actions[id].keys = append(b.actions[id].keys, k)
		}
		for _, name := range ib.GamepadButtons {
			btn, ok := gamepadButtons[name]
			if !ok {
				errs = append(errs, fmt.Errorf("%s: %w: %q", id, ErrUnknownButton, name))
				continue
			}
			b.actions[id].buttons = append(b.actions[id].buttons, btn)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return b, nil
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll reads the keyboard and every standard-layout gamepad. The left stick
// also drives the move actions.
func (b *Bindings) Poll() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for id := range b.actions {
		for _, key := range b.actions[id].keys {
			if ebiten.IsKeyPressed(key) {
				pressed[id] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range b.actions[id].buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[id] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -b.deadzone {
			pressed[cfg.ActionMoveLeft] = true
		}
		if horizontal > b.deadzone {
			pressed[cfg.ActionMoveRight] = true
		}
	}

	return pressed
}
