package components

import (
	"image"

	"github.com/automoto/xdash/mask"
	"github.com/yohamta/donburi"
)

// SpriteData is the image an entity currently shows and the collision mask
// derived from it. Each entity owns its mask.
type SpriteData struct {
	Image image.Image
	Mask  *mask.Mask
}

var Sprite = donburi.NewComponentType[SpriteData]()

// SetImage swaps the displayed image and rebuilds the mask when it changed.
// It reports whether the image changed.
func (s *SpriteData) SetImage(img image.Image) bool {
	if s.Image == img && s.Mask != nil {
		return false
	}
	s.Image = img
	s.Mask = mask.FromImage(img)
	return true
}

// Size returns the image size, or zero with no image.
func (s *SpriteData) Size() (float64, float64) {
	if s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
