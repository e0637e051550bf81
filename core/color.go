package core

import "github.com/Heliodex/sprig/constant"

// Color is a palette glyph stored per pixel
// The raw glyph byte doubles as the colour index so encoded tiles need no lookup
type Color byte

// Background is the colour of a cleared or never-written pixel
const Background Color = constant.GlyphBlack

// IsOpaque reports whether the colour is one of the palette glyphs
func (c Color) IsOpaque() bool {
	return IsPaletteGlyph(byte(c)) && c != constant.GlyphTransparent && c != constant.GlyphSpace
}

// IsPaletteGlyph reports whether g may appear in a frame or bitmap
func IsPaletteGlyph(g byte) bool {
	if g == constant.GlyphTransparent || g == constant.GlyphSpace {
		return true
	}
	for i := 0; i < len(constant.PaletteGlyphs); i++ {
		if constant.PaletteGlyphs[i] == g {
			return true
		}
	}
	return false
}
