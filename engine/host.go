package engine

import (
	"errors"
	"fmt"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/render"
)

var (
	ErrInvalidLegend = errors.New("invalid legend")
)

// Host turns the tile protocol into pixels
type Host interface {
	// SetLegend registers or replaces tile bitmaps
	SetLegend(entries ...render.LegendEntry) error
	// SetMap declares the current tile arrangement
	SetMap(grid string) error
}

// ValidateLegend enforces the host legend rules
func ValidateLegend(entries []render.LegendEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: at least one entry is required", ErrInvalidLegend)
	}
	for _, e := range entries {
		if e.ID == constant.GlyphTransparent {
			return fmt.Errorf("%w: tile id %q is reserved", ErrInvalidLegend, e.ID)
		}
	}
	return nil
}
