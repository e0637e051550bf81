package core

import "github.com/Heliodex/sprig/constant"

// PixelBuffer is the flat indexed-colour framebuffer of the playfield
// Cells are addressed by linear index y*width+x; writes outside the screen are dropped
type PixelBuffer struct {
	width  int
	height int
	pix    []Color
}

// NewPixelBuffer creates a buffer of the fixed screen size, cleared to Background
func NewPixelBuffer() *PixelBuffer {
	b := &PixelBuffer{
		width:  constant.ScreenWidth,
		height: constant.ScreenHeight,
		pix:    make([]Color, constant.ScreenWidth*constant.ScreenHeight),
	}
	b.Clear(Background)
	return b
}

// Width returns the buffer width
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *PixelBuffer) Height() int {
	return b.height
}

// InBounds returns true if (x, y) addresses a cell
func (b *PixelBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Index returns the linear index of (x, y) without bounds checking
func (b *PixelBuffer) Index(x, y int) int {
	return y*b.width + x
}

// Clear fills the whole buffer using exponential copy
func (b *PixelBuffer) Clear(c Color) {
	if len(b.pix) == 0 {
		return
	}
	b.pix[0] = c
	for filled := 1; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}

// SetPixel writes one cell; out-of-range coordinates are a no-op
func (b *PixelBuffer) SetPixel(x, y int, c Color) bool {
	if !b.InBounds(x, y) {
		return false
	}
	b.pix[y*b.width+x] = c
	return true
}

// Pixel returns the colour at (x, y), Background when out of range
func (b *PixelBuffer) Pixel(x, y int) Color {
	if !b.InBounds(x, y) {
		return Background
	}
	return b.pix[y*b.width+x]
}

// SetIndex writes by linear index; indices outside the buffer are a no-op
func (b *PixelBuffer) SetIndex(idx int, c Color) bool {
	if idx < 0 || idx >= len(b.pix) {
		return false
	}
	b.pix[idx] = c
	return true
}

// Row returns a copy of one row, nil when out of range
func (b *PixelBuffer) Row(y int) []Color {
	if y < 0 || y >= b.height {
		return nil
	}
	row := make([]Color, b.width)
	copy(row, b.pix[y*b.width:(y+1)*b.width])
	return row
}

// Equal reports whether two buffers hold identical pixels
func (b *PixelBuffer) Equal(o *PixelBuffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}
