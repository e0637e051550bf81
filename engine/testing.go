package engine

import (
	"strings"

	"github.com/Heliodex/sprig/render"
)

// RecordingHost is a Host for tests that keeps the last handoff
type RecordingHost struct {
	Legend   []render.LegendEntry
	Map      string
	Handoffs int
	Err      error
}

// SetLegend records the entries after validating them
func (h *RecordingHost) SetLegend(entries ...render.LegendEntry) error {
	if h.Err != nil {
		return h.Err
	}
	if err := ValidateLegend(entries); err != nil {
		return err
	}
	h.Legend = append(h.Legend[:0], entries...)
	return nil
}

// SetMap records the grid
func (h *RecordingHost) SetMap(grid string) error {
	if h.Err != nil {
		return h.Err
	}
	h.Map = grid
	h.Handoffs++
	return nil
}

// Contains reports whether any recorded bitmap holds the glyph
func (h *RecordingHost) Contains(glyph byte) bool {
	for _, e := range h.Legend {
		if strings.IndexByte(e.Bitmap, glyph) >= 0 {
			return true
		}
	}
	return false
}

// NewTestSession creates a seeded session for deterministic tests
func NewTestSession() *Session {
	cfg := DefaultConfig()
	cfg.Seed = 1
	return NewSession(cfg)
}
