package config

import "image/color"

// Config holds window settings.
type Config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	AssetDir   string `toml:"asset_dir"`
	Background string `toml:"background"`
}

// PhysicsConfig contains the constants of the per-tick integrator.
type PhysicsConfig struct {
	Gravity        float64 `toml:"gravity"`
	TickRate       int     `toml:"tick_rate"`       // Ticks per second
	AnimationDelay int     `toml:"animation_delay"` // Ticks per displayed frame
	JumpImpulse    float64 `toml:"jump_impulse"`    // Multiplied by gravity
	HeadBounce     float64 `toml:"head_bounce"`     // Fraction of vy kept after hitting a ceiling
	HitSeconds     int     `toml:"hit_seconds"`     // Length of the hit window
	MaxJumps       int     `toml:"max_jumps"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Velocity    float64 `toml:"velocity"`
	ProbeFactor float64 `toml:"probe_factor"` // Horizontal lookahead in multiples of Velocity
	SpawnX      float64 `toml:"spawn_x"`
	SpawnY      float64 `toml:"spawn_y"`
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Character   string  `toml:"character"`

	// Sprite sheets
	FrameSize int `toml:"frame_size"`
	Scale     int `toml:"scale"`
}

// FireConfig contains the hazard settings.
type FireConfig struct {
	Width          int `toml:"width"`
	Height         int `toml:"height"`
	AnimationDelay int `toml:"animation_delay"`
	// Seconds between lit/unlit flips. Zero keeps each fire in its level state.
	TogglePeriod float64 `toml:"toggle_period"`
}

// ViewportConfig contains the horizontal scroll settings.
type ViewportConfig struct {
	ScrollAreaWidth float64 `toml:"scroll_area_width"`
}

// WorldConfig contains world geometry settings.
type WorldConfig struct {
	BlockSize int    `toml:"block_size"`
	Level     string `toml:"level"` // Empty loads the embedded level
}

// DebugConfig toggles developer overlays.
type DebugConfig struct {
	Enabled bool `toml:"enabled"`
	ShowHUD bool `toml:"show_hud"`
}

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Fire FireConfig
var Viewport ViewportConfig
var World WorldConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue     = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Orange   = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Grey     = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Backdrop = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	Reset()
}

// Reset restores every config value to its default.
func Reset() {
	C = &Config{
		Width:      1000,
		Height:     800,
		Title:      "X-Dash Platformer",
		AssetDir:   "assets",
		Background: "Yellow.png",
	}

	Physics = PhysicsConfig{
		Gravity:        1,
		TickRate:       60,
		AnimationDelay: 3,
		JumpImpulse:    8,
		HeadBounce:     0.8,
		HitSeconds:     2,
		MaxJumps:       2,
	}

	Player = PlayerConfig{
		Velocity:    10,
		ProbeFactor: 2,
		SpawnX:      100,
		SpawnY:      100,
		Width:       50,
		Height:      50,
		Character:   "MaskDude",
		FrameSize:   32,
		Scale:       2,
	}

	Fire = FireConfig{
		Width:          16,
		Height:         32,
		AnimationDelay: 3,
	}

	Viewport = ViewportConfig{
		ScrollAreaWidth: 300,
	}

	World = WorldConfig{
		BlockSize: 96,
	}

	Debug = DebugConfig{
		ShowHUD: true,
	}

	Input = defaultInput()
}

// HitFrames is the number of ticks the hit flag stays set.
func HitFrames() int {
	return Physics.HitSeconds * Physics.TickRate
}
