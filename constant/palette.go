package constant

// Palette glyphs, one character per colour as used by host bitmaps
const (
	GlyphBlack     = '0'
	GlyphDarkGrey  = 'L'
	GlyphLightGrey = '1'
	GlyphWhite     = '2'
	GlyphRed       = '3'
	GlyphBrown     = 'C'
	GlyphBlue      = '5'
	GlyphCyan      = '7'
	GlyphYellow    = '6'
	GlyphLime      = '4'
	GlyphGreen     = 'D'
	GlyphGold      = 'F'
	GlyphPink      = '8'
	GlyphPurple    = 'H'
	GlyphOrange    = '9'

	// GlyphTransparent marks an unpainted pixel inside a frame or bitmap
	GlyphTransparent = '.'
	// GlyphSpace is accepted as transparent as well
	GlyphSpace = ' '
)

// PaletteGlyphs lists the opaque colours in palette order
const PaletteGlyphs = "0L123C756F4D8H9"
