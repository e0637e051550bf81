package entity

import "strings"

const (
	fontWidth  = 3
	fontHeight = 5
	// letterGap and lineGap are in unscaled pixels
	letterGap = 1
	lineGap   = 4
)

// Glyph '2' marks lit pixels; banner rendering recolours it per line
var digitFont = [10][fontHeight]string{
	{"222", "2.2", "2.2", "2.2", "222"},
	{".2.", "22.", ".2.", ".2.", "222"},
	{"222", "..2", "222", "2..", "222"},
	{"222", "..2", ".22", "..2", "222"},
	{"2.2", "2.2", "222", "..2", "..2"},
	{"222", "2..", "222", "..2", "222"},
	{"222", "2..", "222", "2.2", "222"},
	{"222", "..2", "..2", ".2.", ".2."},
	{"222", "2.2", "222", "2.2", "222"},
	{"222", "2.2", "222", "..2", "222"},
}

var letterFont = map[rune][fontHeight]string{
	'A': {".2.", "2.2", "222", "2.2", "2.2"},
	'E': {"222", "2..", "22.", "2..", "222"},
	'G': {".22", "2..", "2.2", "2.2", ".22"},
	'H': {"2.2", "2.2", "222", "2.2", "2.2"},
	'I': {"222", ".2.", ".2.", ".2.", "222"},
	'M': {"2.2", "222", "222", "2.2", "2.2"},
	'O': {".2.", "2.2", "2.2", "2.2", ".2."},
	'P': {"22.", "2.2", "22.", "2..", "2.."},
	'R': {"22.", "2.2", "22.", "2.2", "2.2"},
	'S': {".22", "2..", ".2.", "..2", "22."},
	'T': {"222", ".2.", ".2.", ".2.", ".2."},
	'V': {"2.2", "2.2", "2.2", "2.2", ".2."},
	' ': {"...", "...", "...", "...", "..."},
}

type bannerLine struct {
	text   string
	glyph  byte
	scale  int
	hidden bool
}

// textRows renders one line of text; unknown runes render blank
func (l bannerLine) textRows() []string {
	rows := make([]string, fontHeight*l.scale)
	var sb strings.Builder
	for fy := 0; fy < fontHeight; fy++ {
		sb.Reset()
		for i, r := range l.text {
			if i > 0 {
				sb.WriteString(strings.Repeat(".", letterGap*l.scale))
			}
			glyph, ok := letterFont[r]
			if !ok {
				glyph = letterFont[' ']
			}
			for fx := 0; fx < fontWidth; fx++ {
				c := byte('.')
				if glyph[fy][fx] != '.' && !l.hidden {
					c = l.glyph
				}
				for s := 0; s < l.scale; s++ {
					sb.WriteByte(c)
				}
			}
		}
		for s := 0; s < l.scale; s++ {
			rows[fy*l.scale+s] = sb.String()
		}
	}
	return rows
}

// banner stacks text lines, each centred on the widest
func banner(lines ...bannerLine) Frame {
	rendered := make([][]string, len(lines))
	width := 0
	for i, l := range lines {
		rendered[i] = l.textRows()
		if w := len(rendered[i][0]); w > width {
			width = w
		}
	}

	var out Frame
	for i, rows := range rendered {
		if i > 0 {
			for g := 0; g < lineGap; g++ {
				out = append(out, strings.Repeat(".", width))
			}
		}
		for _, r := range rows {
			pad := (width - len(r)) / 2
			out = append(out, strings.Repeat(".", pad)+r+strings.Repeat(".", width-len(r)-pad))
		}
	}
	return out
}
