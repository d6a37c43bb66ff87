package components

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/xdash/assets/animations"
	cfg "github.com/automoto/xdash/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func frame(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	return img
}

func TestFireAdvanceCyclesAndWraps(t *testing.T) {
	a, b := frame(2, 2), frame(2, 3)
	f := FireData{Table: animations.Table{"on": {a, b}, "off": {a}}}

	assert.Same(t, a, f.Advance(3), "fires start unlit")

	f.On()
	f.Counter = 0
	got := make([]image.Image, 0, 9)
	for i := 0; i < 9; i++ {
		got = append(got, f.Advance(3))
	}
	assert.Equal(t, []image.Image{a, a, a, b, b, b, a, a, a}, got)
	// 9/3 = 3 > 2 frames, so the counter wrapped.
	assert.Zero(t, f.Counter)
}

func TestFireToggle(t *testing.T) {
	f := FireData{}
	assert.Equal(t, FireOff, f.State)
	f.Toggle()
	assert.Equal(t, "on", f.State.String())
	f.Toggle()
	assert.Equal(t, FireOff, f.State)
}

func TestSpriteSetImageRebuildsMask(t *testing.T) {
	s := SpriteData{}
	img := frame(4, 3)

	require.True(t, s.SetImage(img))
	require.NotNil(t, s.Mask)
	assert.Equal(t, 12, s.Mask.Count())
	m := s.Mask

	assert.False(t, s.SetImage(img))
	assert.Same(t, m, s.Mask)

	assert.True(t, s.SetImage(frame(2, 2)))
	assert.NotSame(t, m, s.Mask)
	w, h := s.Size()
	assert.Equal(t, 2.0, w)
	assert.Equal(t, 2.0, h)
}

func TestSpritesNeverShareMasks(t *testing.T) {
	img := frame(4, 4)
	var a, b SpriteData
	a.SetImage(img)
	b.SetImage(img)
	assert.NotSame(t, a.Mask, b.Mask)
}

func TestInputEdges(t *testing.T) {
	var in InputData
	var pressed [cfg.ActionCount]bool

	pressed[cfg.ActionJump] = true
	in.Sample(pressed)
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, in.Action(cfg.ActionJump))

	in.Sample(pressed)
	assert.Equal(t, ActionState{Pressed: true}, in.Action(cfg.ActionJump))

	in.Sample([cfg.ActionCount]bool{})
	assert.Equal(t, ActionState{JustReleased: true}, in.Action(cfg.ActionJump))
	assert.Equal(t, ActionState{}, in.Action(cfg.ActionCount))
}

func TestContactsAll(t *testing.T) {
	w := donburi.NewWorld()
	left := w.Entry(w.Create(Obstacle))
	v1 := w.Entry(w.Create(Obstacle))
	v2 := w.Entry(w.Create(Obstacle))

	c := Contacts{Left: left, Vertical: []*donburi.Entry{v1, v2}}
	assert.Equal(t, []*donburi.Entry{left, v1, v2}, c.All())
	assert.Empty(t, Contacts{}.All())
}

func TestAnimationSetAnimation(t *testing.T) {
	a := AnimationData{}
	a.SetAnimation("idle_left")
	a.SetAnimation("idle_left")
	a.SetAnimation("run_left")
	assert.Equal(t, "run_left", a.Current)
	assert.Equal(t, "idle_left", a.Previous)
}
