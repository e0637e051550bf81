package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
)

// tileAlphabet assigns one id per tile in row-major order
// '.' is reserved by hosts as the empty tile and never appears
const tileAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&*+-/:;<=>?@^_"

var (
	ErrBadBitmap = errors.New("malformed bitmap block")
)

// LegendEntry binds a tile id to its bitmap block
type LegendEntry struct {
	ID     rune
	Bitmap string
}

// Encoded is one frame in the host tile protocol
type Encoded struct {
	Legend []LegendEntry
	Map    string
}

// TileID returns the id of tile i, counted row-major from the top-left
func TileID(i int) rune {
	return rune(tileAlphabet[i])
}

// Encode partitions the buffer into 16x16 tiles and serialises each into a bitmap block
// Output depends only on buffer contents
func Encode(buf *core.PixelBuffer) Encoded {
	enc := Encoded{Legend: make([]LegendEntry, 0, constant.TileCount)}

	var sb strings.Builder
	sb.Grow(constant.TileSize * (constant.TileSize + 1))

	for ty := 0; ty < constant.TilesY; ty++ {
		for tx := 0; tx < constant.TilesX; tx++ {
			sb.Reset()
			for y := 0; y < constant.TileSize; y++ {
				for x := 0; x < constant.TileSize; x++ {
					sb.WriteByte(byte(buf.Pixel(tx*constant.TileSize+x, ty*constant.TileSize+y)))
				}
				sb.WriteByte('\n')
			}
			enc.Legend = append(enc.Legend, LegendEntry{
				ID:     TileID(ty*constant.TilesX + tx),
				Bitmap: sb.String(),
			})
		}
	}

	enc.Map = TileMap()
	return enc
}

// TileMap returns the fixed arrangement string, one row of ids per tile row
func TileMap() string {
	rows := make([]string, constant.TilesY)
	for ty := range rows {
		rows[ty] = tileAlphabet[ty*constant.TilesX : (ty+1)*constant.TilesX]
	}
	return strings.Join(rows, "\n")
}

// DecodeBitmap parses a bitmap block into TileSize rows of TileSize glyphs
func DecodeBitmap(block string) ([][]core.Color, error) {
	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
	if len(lines) != constant.TileSize {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrBadBitmap, constant.TileSize, len(lines))
	}

	out := make([][]core.Color, constant.TileSize)
	for y, line := range lines {
		if len(line) != constant.TileSize {
			return nil, fmt.Errorf("%w: row %d has %d glyphs, expected %d", ErrBadBitmap, y, len(line), constant.TileSize)
		}
		out[y] = make([]core.Color, constant.TileSize)
		for x := 0; x < len(line); x++ {
			g := line[x]
			if !core.IsPaletteGlyph(g) {
				return nil, fmt.Errorf("%w: glyph %q at row %d column %d is not in the palette", ErrBadBitmap, g, y, x)
			}
			out[y][x] = core.Color(g)
		}
	}
	return out, nil
}
