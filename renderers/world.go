package renderers

import (
	"github.com/automoto/xdash/components"
	"github.com/automoto/xdash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// offsetX returns the current viewport offset, zero before the viewport
// exists.
func offsetX(w donburi.World) float64 {
	entry, ok := components.Viewport.First(w)
	if !ok {
		return 0
	}
	return components.Viewport.Get(entry).OffsetX
}

// DrawBackground tiles the background image over the whole window, then
// draws the level's backdrop layers scrolled with the world.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if level.Assets != nil && level.Assets.Background != nil {
		tile := ebitenImage(level.Assets.Background)
		tw, th := tile.Bounds().Dx(), tile.Bounds().Dy()
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		for i := 0; i < sw/tw+1; i++ {
			for j := 0; j < sh/th+1; j++ {
				drawOp.GeoM.Reset()
				drawOp.ColorScale.Reset()
				drawOp.GeoM.Translate(float64(i*tw), float64(j*th))
				screen.DrawImage(tile, drawOp)
			}
		}
	}

	if level.CurrentLevel != nil && level.CurrentLevel.Backdrop != nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-offsetX(ecs.World), 0)
		screen.DrawImage(ebitenImage(level.CurrentLevel.Backdrop), drawOp)
	}
}

// DrawObstacles draws blocks and fires at their rect minus the viewport
// offset, skipping anything outside the window.
func DrawObstacles(ecs *ecs.ECS, screen *ebiten.Image) {
	offset := offsetX(ecs.World)
	width := float64(screen.Bounds().Dx())

	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Right()-offset < 0 || obj.Left()-offset > width {
			return
		}
		drawSprite(screen, e, offset)
	})
}

// DrawPlayer draws the player on top of the world.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	offset := offsetX(ecs.World)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, e, offset)
	})
}

func drawSprite(screen *ebiten.Image, e *donburi.Entry, offset float64) {
	sprite := components.Sprite.Get(e)
	img := ebitenImage(sprite.Image)
	if img == nil {
		return
	}
	x, y := components.Object.Get(e).Pixel()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(float64(x)-offset, float64(y))
	screen.DrawImage(img, drawOp)
}
