package components

import (
	"image"

	"github.com/automoto/xdash/assets/animations"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type FireState int

const (
	FireOff FireState = iota
	FireOn
)

func (s FireState) String() string {
	if s == FireOn {
		return "on"
	}
	return "off"
}

// FireData is the hazard's two-state animation. Lit state is set from level
// scripting, never by collisions.
type FireData struct {
	State   FireState
	Counter int
	Table   animations.Table
}

var Fire = donburi.NewComponentType[FireData]()

func (f *FireData) On()  { f.State = FireOn }
func (f *FireData) Off() { f.State = FireOff }

func (f *FireData) Toggle() {
	if f.State == FireOn {
		f.Off()
	} else {
		f.On()
	}
}

// Advance returns the frame for this tick and steps the counter. The counter
// wraps to zero once it runs a frame past the sequence so it cannot grow
// without bound.
func (f *FireData) Advance(delay int) image.Image {
	if delay <= 0 {
		delay = 1
	}
	seq := f.Table.Get(f.State.String())
	img := seq.Frame(f.Counter, delay)
	f.Counter++
	if f.Counter/delay > len(seq) {
		f.Counter = 0
	}
	return img
}

// FireScriptData flips a fire between lit and unlit on a fixed period.
type FireScriptData struct {
	Timer *gween.Tween
}

var FireScript = donburi.NewComponentType[FireScriptData]()
