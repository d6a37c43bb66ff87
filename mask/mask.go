// Package mask implements per-pixel collision masks.
//
// A Mask records which pixels of an image are solid. Two masks collide when
// at least one solid pixel of each lands on the same spot once the second
// mask is shifted by an offset relative to the first.
package mask

import (
	"image"
	"math/bits"
)

// AlphaThreshold is the alpha value above which a pixel counts as solid.
const AlphaThreshold = 127

// Mask is a fixed-size bitmap, one bit per pixel, rows packed into uint64 words.
type Mask struct {
	w, h   int
	stride int // words per row
	bits   []uint64
}

// New returns an empty mask of the given size.
func New(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Mask{w: w, h: h, stride: stride, bits: make([]uint64, stride*h)}
}

// Filled returns a mask with every pixel set.
func Filled(w, h int) *Mask {
	m := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

// FromImage builds a mask from the alpha channel of img. The mask origin is
// the top-left corner of img's bounds.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

func (m *Mask) Width() int  { return m.w }
func (m *Mask) Height() int { return m.h }

// Get reports whether the pixel at (x, y) is solid. Out of range pixels are empty.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Set marks the pixel at (x, y). Out of range writes are ignored.
func (m *Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	i := y*m.stride + x/64
	bit := uint64(1) << uint(x%64)
	if on {
		m.bits[i] |= bit
	} else {
		m.bits[i] &^= bit
	}
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Clone returns an independent copy of m.
func (m *Mask) Clone() *Mask {
	c := &Mask{w: m.w, h: m.h, stride: m.stride, bits: make([]uint64, len(m.bits))}
	copy(c.bits, m.bits)
	return c
}

// Equal reports whether both masks have the same size and pixels.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.w != o.w || m.h != o.h {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether m and o share a solid pixel when o's top-left
// corner is placed at (offX, offY) in m's coordinates.
func (m *Mask) Overlaps(o *Mask, offX, offY int) bool {
	x0 := max(0, offX)
	y0 := max(0, offY)
	x1 := min(m.w, offX+o.w)
	y1 := min(m.h, offY+o.h)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && o.Get(x-offX, y-offY) {
				return true
			}
		}
	}
	return false
}
