package renderers

import (
	"fmt"
	"image/color"

	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/automoto/xdash/fonts"
	"github.com/automoto/xdash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func debugEnabled(w donburi.World) bool {
	entry, ok := components.Settings.First(w)
	return ok && components.Settings.Get(entry).Debug
}

// DrawDebug outlines every object in the collision space and prints the
// player's body state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled(ecs.World) {
		return
	}
	offset := offsetX(ecs.World)
	width := float64(screen.Bounds().Dx())

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			x := obj.X - offset
			if x+obj.W < 0 || x > width {
				continue
			}

			c := cfg.Blue
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Grey
			} else if obj.HasTags(tags.ResolvFire) {
				c = cfg.Orange
			}
			strokeRect(screen, x, obj.Y, obj.W, obj.H, c)
		}
	}

	// Trigger bands of the viewport.
	if vpEntry, ok := components.Viewport.First(ecs.World); ok {
		vp := components.Viewport.Get(vpEntry)
		h := float64(screen.Bounds().Dy())
		vector.FillRect(screen, float32(vp.ScrollArea), 0, 1, float32(h), cfg.Green, false)
		vector.FillRect(screen, float32(vp.ScreenWidth-vp.ScrollArea), 0, 1, float32(h), cfg.Green, false)
	}

	face := fonts.Mono.Get()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)
		anim := components.Animation.Get(e)
		lines := []string{
			fmt.Sprintf("pos  %.1f, %.1f", obj.X, obj.Y),
			fmt.Sprintf("vel  %.2f, %.2f", physics.VX, physics.VY),
			fmt.Sprintf("fall %d  jumps %d", physics.FallFrames, physics.JumpCount),
			fmt.Sprintf("hit  %t (%d)", physics.Hit, physics.HitFrames),
			fmt.Sprintf("anim %s", anim.Current),
		}
		for i, line := range lines {
			text.Draw(screen, line, face, 10, 40+i*14, cfg.White)
		}
	})
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
