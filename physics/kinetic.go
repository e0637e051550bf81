package physics

import (
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/entity"
)

// Integrate advances position by one frame of velocity: p = p + v
func Integrate(e *entity.Entity) core.Point {
	e.Pos = e.Pos.Add(e.Vel)
	return e.Pos.Round()
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(e *entity.Entity, v core.Vec2) {
	e.Vel = v
}

// ClampX keeps the entity anchor within [minX, maxX], returns true if clamping occurred
func ClampX(e *entity.Entity, minX, maxX float64) bool {
	if e.Pos.X < minX {
		e.Pos.X = minX
		return true
	}
	if e.Pos.X > maxX {
		e.Pos.X = maxX
		return true
	}
	return false
}

// OutsideMargin reports whether the anchor has drifted more than margin pixels beyond the screen
func OutsideMargin(e *entity.Entity, width, height, margin float64) bool {
	return e.Pos.X < -margin || e.Pos.X >= width+margin ||
		e.Pos.Y < -margin || e.Pos.Y >= height+margin
}
