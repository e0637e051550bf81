package physics

import (
	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/entity"
)

// Resolver applies the outcome of a collision between the entity being drawn and the occupant it overlapped
type Resolver func(drawn, occupant *entity.Entity)

// RemovedFunc reports whether an entity was destroyed earlier in the frame
type RemovedFunc func(e *entity.Entity) bool

// DrawPass paints entities into the buffer and detects pixel overlaps while doing so
// Occupancy is keyed by linear buffer index and lives for one frame
type DrawPass struct {
	buf    *core.PixelBuffer
	owners map[int]*entity.Entity

	collideOffscreenRows bool

	resolve   Resolver
	isRemoved RemovedFunc

	collisions int
}

// NewDrawPass creates a pass over buf
// With collideOffscreenRows, rows above or below the screen still take part in collision checks without being painted
func NewDrawPass(buf *core.PixelBuffer, collideOffscreenRows bool) *DrawPass {
	return &DrawPass{
		buf:                  buf,
		owners:               make(map[int]*entity.Entity, 256),
		collideOffscreenRows: collideOffscreenRows,
	}
}

// Begin resets occupancy for a new frame
func (p *DrawPass) Begin(resolve Resolver, isRemoved RemovedFunc) {
	clear(p.owners)
	p.resolve = resolve
	p.isRemoved = isRemoved
	p.collisions = 0
}

// Buffer returns the target buffer
func (p *DrawPass) Buffer() *core.PixelBuffer {
	return p.buf
}

// Collisions returns the number of pairs resolved since Begin
func (p *DrawPass) Collisions() int {
	return p.collisions
}

func (p *DrawPass) removed(e *entity.Entity) bool {
	return p.isRemoved != nil && p.isRemoved(e)
}

// Draw paints the current frame of e, resolving each distinct partner at most once for this call
// Ownership is recorded for every painted pixel whatever the collision outcome
func (p *DrawPass) Draw(e *entity.Entity, pal *entity.Palette) {
	var resolved map[*entity.Entity]struct{}

	origin := e.Origin()
	for fy, row := range e.CurrentFrame() {
		y := origin.Y + fy
		onScreen := y >= 0 && y < constant.ScreenHeight
		if !onScreen && !p.collideOffscreenRows {
			continue
		}

		for fx := 0; fx < len(row); fx++ {
			g := core.Color(row[fx])
			if !g.IsOpaque() {
				continue
			}
			x := origin.X + fx
			if x < 0 || x >= constant.ScreenWidth {
				continue
			}
			idx := y*constant.ScreenWidth + x

			if other, ok := p.owners[idx]; ok && other != e && e.Collidable && other.Collidable && p.resolve != nil {
				if _, done := resolved[other]; !done && !p.removed(e) && !p.removed(other) {
					if resolved == nil {
						resolved = make(map[*entity.Entity]struct{}, 2)
					}
					resolved[other] = struct{}{}
					p.collisions++
					p.resolve(e, other)
				}
			}

			if onScreen {
				p.buf.SetIndex(idx, pal.Map(g))
			}
			p.owners[idx] = e
		}
	}
}
