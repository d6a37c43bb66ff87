package assets

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Placeholder art for running without the sprite pack. Sheets are drawn at
// source resolution and go through the same slicing as files on disk.

var characterColors = map[string]color.NRGBA{
	"MaskDude":   {R: 230, G: 120, B: 40, A: 255},
	"NinjaFrog":  {R: 60, G: 170, B: 80, A: 255},
	"PinkMan":    {R: 240, G: 110, B: 170, A: 255},
	"VirtualGuy": {R: 70, G: 120, B: 230, A: 255},
}

var placeholderFrames = map[string]int{
	"idle":        4,
	"run":         6,
	"jump":        1,
	"double_jump": 4,
	"fall":        1,
	"hit":         4,
}

func characterSheets(name string, size int) map[string]image.Image {
	body, ok := characterColors[name]
	if !ok {
		body = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	}
	eye := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	flash := color.NRGBA{R: 255, G: 60, B: 60, A: 255}

	sheets := make(map[string]image.Image, len(placeholderFrames))
	for anim, n := range placeholderFrames {
		sheet := imaging.New(size*n, size, color.NRGBA{})
		for i := 0; i < n; i++ {
			c := body
			if anim == "hit" && i%2 == 0 {
				c = flash
			}
			ox := i * size
			// Body bobs by a pixel on odd frames. The bottom row stays solid so
			// a standing character rests flush on the ground.
			top := size / 8
			if i%2 == 1 {
				top++
			}
			fillRect(sheet, image.Rect(ox+size/5, top, ox+size-size/5, size), c)
			// Eyes look right; the left-facing frames are mirrored.
			eyeY := top + size/6
			fillRect(sheet, image.Rect(ox+size/2, eyeY, ox+size/2+2, eyeY+3), eye)
			fillRect(sheet, image.Rect(ox+size-size/5-4, eyeY, ox+size-size/5-2, eyeY+3), eye)
			if anim == "run" {
				// Alternate the feet so the run cycle reads.
				gap := image.Rect(ox+size/2-2, size-3, ox+size/2+2, size)
				if i%2 == 0 {
					gap = gap.Add(image.Pt(-3, 0))
				}
				fillRect(sheet, gap, color.NRGBA{})
			}
		}
		sheets[anim] = sheet
	}
	return sheets
}

func fireSheets(width, height int) map[string]image.Image {
	on := imaging.New(width*3, height, color.NRGBA{})
	for i := 0; i < 3; i++ {
		ox := i * width
		flame := height/2 - i*2
		for y := flame; y < height; y++ {
			// Narrow at the tip, full width at the base.
			half := (y - flame + 1) * width / (2 * (height - flame))
			mid := ox + width/2
			c := color.NRGBA{R: 255, G: uint8(200 - (y-flame)*4), B: 0, A: 255}
			fillRect(on, image.Rect(mid-half, y, mid+half+1, y+1), c)
		}
	}

	off := imaging.New(width, height, color.NRGBA{})
	fillRect(off, image.Rect(0, height-height/4, width, height), color.NRGBA{R: 90, G: 90, B: 90, A: 255})

	return map[string]image.Image{"on": on, "off": off}
}

func terrainSheet(size int) image.Image {
	sheet := imaging.New(96+size, size, color.NRGBA{})
	dirt := color.NRGBA{R: 150, G: 95, B: 60, A: 255}
	grass := color.NRGBA{R: 80, G: 180, B: 70, A: 255}
	fillRect(sheet, image.Rect(96, 0, 96+size, size), dirt)
	fillRect(sheet, image.Rect(96, 0, 96+size, size/8), grass)
	return sheet
}

func backgroundTile() image.Image {
	const size = 64
	tile := imaging.New(size, size, color.NRGBA{R: 250, G: 225, B: 120, A: 255})
	fillRect(tile, image.Rect(0, 0, size/2, size/2), color.NRGBA{R: 245, G: 215, B: 105, A: 255})
	fillRect(tile, image.Rect(size/2, size/2, size, size), color.NRGBA{R: 245, G: 215, B: 105, A: 255})
	return tile
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
