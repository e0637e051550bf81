package render

import (
	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
)

// RGB is a 24-bit colour a host paints a glyph with
type RGB struct {
	R, G, B uint8
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
)

// Palette maps every opaque glyph to its fixed colour
var Palette = map[byte]RGB{
	constant.GlyphBlack:     {0, 0, 0},
	constant.GlyphDarkGrey:  {73, 80, 87},
	constant.GlyphLightGrey: {145, 151, 156},
	constant.GlyphWhite:     {248, 249, 250},
	constant.GlyphRed:       {235, 44, 71},
	constant.GlyphBrown:     {139, 65, 46},
	constant.GlyphCyan:      {25, 177, 248},
	constant.GlyphBlue:      {19, 21, 224},
	constant.GlyphYellow:    {254, 230, 16},
	constant.GlyphGold:      {149, 140, 50},
	constant.GlyphLime:      {45, 225, 62},
	constant.GlyphGreen:     {29, 148, 16},
	constant.GlyphPink:      {245, 109, 187},
	constant.GlyphPurple:    {170, 58, 197},
	constant.GlyphOrange:    {245, 113, 23},
}

// RGBOf returns the colour of a glyph; transparent and unknown glyphs render as background
func RGBOf(c core.Color) RGB {
	if rgb, ok := Palette[byte(c)]; ok {
		return rgb
	}
	return RGBBlack
}


// FillRGBA writes buf into dst as opaque 8-bit RGBA, dst must hold four bytes per pixel
func FillRGBA(dst []byte, buf *core.PixelBuffer) {
	i := 0
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := RGBOf(buf.Pixel(x, y))
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = 0xff
			i += 4
		}
	}
}
