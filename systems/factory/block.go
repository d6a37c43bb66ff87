package factory

import (
	"image"

	"github.com/automoto/xdash/archetypes"
	"github.com/automoto/xdash/components"
	"github.com/automoto/xdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateBlock creates a static obstacle showing img at (x, y). The block
// builds its own mask from img.
func CreateBlock(w donburi.World, x, y float64, img image.Image) *donburi.Entry {
	block := archetypes.Block.Spawn(w)

	sprite := components.Sprite.Get(block)
	sprite.SetImage(img)
	bw, bh := sprite.Size()

	obj := resolv.NewObject(x, y, bw, bh, tags.ResolvSolid, tags.ResolvObstacle)
	obj.Data = block // Link for O(1) lookup
	components.Object.SetValue(block, components.ObjectData{Object: obj})

	addObstacle(w, block, obj)

	return block
}
