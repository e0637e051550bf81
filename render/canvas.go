package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
)

// TileCanvas is the host-side half of the tile protocol
// It stores legend bitmaps and the current map and composes them back into pixels
type TileCanvas struct {
	mu      sync.RWMutex
	tiles   map[rune][][]core.Color
	grid    []string
	updated bool
}

// NewTileCanvas creates an empty canvas
func NewTileCanvas() *TileCanvas {
	return &TileCanvas{
		tiles: make(map[rune][][]core.Color, constant.TileCount),
	}
}

// SetLegend registers or replaces tile bitmaps, last write wins
func (c *TileCanvas) SetLegend(entries ...LegendEntry) error {
	decoded := make([][][]core.Color, len(entries))
	for i, e := range entries {
		px, err := DecodeBitmap(e.Bitmap)
		if err != nil {
			return fmt.Errorf("tile %q: %w", e.ID, err)
		}
		decoded[i] = px
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range entries {
		c.tiles[e.ID] = decoded[i]
	}
	c.updated = true
	return nil
}

// SetMap declares the tile arrangement
func (c *TileCanvas) SetMap(grid string) error {
	rows := strings.Split(grid, "\n")
	if len(rows) > constant.TilesY {
		return fmt.Errorf("%w: map has %d rows, maximum %d", ErrBadBitmap, len(rows), constant.TilesY)
	}
	for i, r := range rows {
		if len(r) > constant.TilesX {
			return fmt.Errorf("%w: map row %d has %d tiles, maximum %d", ErrBadBitmap, i, len(r), constant.TilesX)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid = rows
	c.updated = true
	return nil
}

// Compose renders the current map into dst; unknown ids and transparent glyphs become background
// Returns false when nothing changed since the last call
func (c *TileCanvas) Compose(dst *core.PixelBuffer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.updated {
		return false
	}
	c.updated = false

	dst.Clear(core.Background)
	for ty, row := range c.grid {
		for tx, id := range row {
			tile, ok := c.tiles[id]
			if !ok {
				continue
			}
			for y := 0; y < constant.TileSize; y++ {
				for x := 0; x < constant.TileSize; x++ {
					g := tile[y][x]
					if !g.IsOpaque() {
						continue
					}
					dst.SetPixel(tx*constant.TileSize+x, ty*constant.TileSize+y, g)
				}
			}
		}
	}
	return true
}
