package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrUnknownKeys      = errors.New("unknown config keys")
)

// File mirrors the on-disk TOML layout. Sections left out of the file keep
// their current values.
type File struct {
	Window   Config                  `toml:"window"`
	Physics  PhysicsConfig           `toml:"physics"`
	Player   PlayerConfig            `toml:"player"`
	Fire     FireConfig              `toml:"fire"`
	Viewport ViewportConfig          `toml:"viewport"`
	World    WorldConfig             `toml:"world"`
	Debug    DebugConfig             `toml:"debug"`
	Input    map[string]InputBinding `toml:"input"`
}

// Load overrides the global config with the values found in the TOML file at
// path and validates the result.
func Load(path string) error {
	f := File{
		Window:   *C,
		Physics:  Physics,
		Player:   Player,
		Fire:     Fire,
		Viewport: Viewport,
		World:    World,
		Debug:    Debug,
	}

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}

	bindings := make(map[ActionID]InputBinding, len(Input.Bindings))
	for id, b := range Input.Bindings {
		bindings[id] = b
	}
	for name, b := range f.Input {
		id, ok := ActionByName(name)
		if !ok {
			return fmt.Errorf("%s: unknown input action %q", path, name)
		}
		bindings[id] = b
	}

	window := f.Window
	C = &window
	Physics = f.Physics
	Player = f.Player
	Fire = f.Fire
	Viewport = f.Viewport
	World = f.World
	Debug = f.Debug
	Input.Bindings = bindings

	return Validate()
}

// Validate checks the global config for values the game loop cannot run with.
func Validate() error {
	var errs []error
	if C.Width <= 0 || C.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", C.Width, C.Height))
	}
	if Physics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", Physics.TickRate))
	}
	if Physics.AnimationDelay <= 0 {
		errs = append(errs, fmt.Errorf("animation_delay must be positive, got %d", Physics.AnimationDelay))
	}
	if Fire.AnimationDelay <= 0 {
		errs = append(errs, fmt.Errorf("fire animation_delay must be positive, got %d", Fire.AnimationDelay))
	}
	if Physics.MaxJumps < 1 || Physics.MaxJumps > 2 {
		errs = append(errs, fmt.Errorf("max_jumps must be 1 or 2, got %d", Physics.MaxJumps))
	}
	if Player.FrameSize <= 0 || Player.Scale <= 0 {
		errs = append(errs, fmt.Errorf("frame_size and scale must be positive"))
	}
	if World.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("block_size must be positive, got %d", World.BlockSize))
	}
	if Viewport.ScrollAreaWidth < 0 || Viewport.ScrollAreaWidth*2 > float64(C.Width) {
		errs = append(errs, fmt.Errorf("scroll_area_width %.0f does not fit a %d wide window", Viewport.ScrollAreaWidth, C.Width))
	}
	if !IsCharacter(Player.Character) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownCharacter, Player.Character))
	}
	return errors.Join(errs...)
}
