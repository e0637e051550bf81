package constant

import "time"

// Screen geometry in logical pixels
const (
	// ScreenWidth is the framebuffer width
	ScreenWidth = 160
	// ScreenHeight is the framebuffer height
	ScreenHeight = 128

	// TileSize is the edge length of one host tile
	TileSize = 16
	// TilesX is the number of tile columns in the host map
	TilesX = ScreenWidth / TileSize
	// TilesY is the number of tile rows in the host map
	TilesY = ScreenHeight / TileSize
	// TileCount is the number of tiles re-encoded every frame
	TileCount = TilesX * TilesY
)

// Frame pacing
const (
	// FrameRate caps executed simulation frames per second
	FrameRate = 30
	// FrameInterval is the minimum wall time between executed frames
	FrameInterval = time.Second / FrameRate
)
