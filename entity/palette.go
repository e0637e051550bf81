package entity

import (
	"fmt"

	"github.com/Heliodex/sprig/core"
)

// Palette is a glyph substitution table applied at draw time
// Substitutions compose: after 3->9 then 9->8, both 3 and 9 draw as 8
type Palette struct {
	table [256]byte
}

// NewPalette returns the identity palette
func NewPalette() *Palette {
	p := &Palette{}
	p.Reset()
	return p
}

// Reset restores the identity mapping
func (p *Palette) Reset() {
	for i := range p.table {
		p.table[i] = byte(i)
	}
}

// Substitute redirects every glyph currently drawn as from to to
func (p *Palette) Substitute(from, to byte) error {
	for _, g := range []byte{from, to} {
		if !core.Color(g).IsOpaque() {
			return fmt.Errorf("substitute %q->%q: %w: %q", from, to, ErrInvalidGlyph, g)
		}
	}
	for i, mapped := range p.table {
		if mapped == from {
			p.table[i] = to
		}
	}
	return nil
}

// Map returns the substituted colour
func (p *Palette) Map(c core.Color) core.Color {
	if p == nil {
		return c
	}
	return core.Color(p.table[c])
}
