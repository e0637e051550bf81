package entity

import (
	"errors"
	"fmt"

	"github.com/Heliodex/sprig/core"
)

var (
	ErrInvalidGlyph = errors.New("glyph not in palette")
	ErrEmptyTexture = errors.New("texture has no frames")
)

// Frame is one still image, one string per row
type Frame []string

// Size returns the widest row length and the number of rows
func (f Frame) Size() (w, h int) {
	for _, row := range f {
		if len(row) > w {
			w = len(row)
		}
	}
	return w, len(f)
}

// Texture is an immutable, validated frame sequence shared by every entity of a kind
type Texture struct {
	name   string
	frames []Frame
}

// NewTexture validates every glyph of every frame against the palette
func NewTexture(name string, frames ...Frame) (*Texture, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyTexture)
	}
	for fi, f := range frames {
		for y, row := range f {
			for x := 0; x < len(row); x++ {
				if !core.IsPaletteGlyph(row[x]) {
					return nil, fmt.Errorf("%s: %w: %q at frame %d row %d column %d",
						name, ErrInvalidGlyph, row[x], fi, y, x)
				}
			}
		}
	}
	return &Texture{name: name, frames: frames}, nil
}

// MustTexture is NewTexture for package-level definitions; a bad glyph is a programming defect
func MustTexture(name string, frames ...Frame) *Texture {
	t, err := NewTexture(name, frames...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the texture name
func (t *Texture) Name() string {
	return t.name
}

// Len returns the number of frames
func (t *Texture) Len() int {
	return len(t.frames)
}

// Frame returns frame i modulo the sequence length
func (t *Texture) Frame(i int) Frame {
	n := len(t.frames)
	return t.frames[((i%n)+n)%n]
}
