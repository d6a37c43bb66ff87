package renderers

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GPU copies of decoded images. Sprites are shared between entities and
// animation frames repeat, so each source image is uploaded once.
var cache = map[image.Image]*ebiten.Image{}

func ebitenImage(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := cache[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	cache[img] = e
	return e
}
