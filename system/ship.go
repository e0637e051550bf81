package system

import (
	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/entity"
	"github.com/Heliodex/sprig/parameter"
	"github.com/Heliodex/sprig/physics"
)

// ShipSystem applies move intent, keeps the ship on screen and fires bullets
type ShipSystem struct{}

// NewShipSystem creates the player system
func NewShipSystem() *ShipSystem {
	return &ShipSystem{}
}

func (sys *ShipSystem) Priority() int {
	return parameter.PriorityShip
}

func (sys *ShipSystem) Update(s *engine.Session) {
	if s.State != engine.StatePlaying {
		return
	}
	ship, ok := s.Ship()
	if !ok {
		return
	}

	switch s.Move {
	case engine.MoveLeft:
		ship.Pos.X -= parameter.ShipSpeed
	case engine.MoveRight:
		ship.Pos.X += parameter.ShipSpeed
	}
	w, _ := ship.Size()
	physics.ClampX(ship, float64(ship.Offset.X), float64(constant.ScreenWidth-w+ship.Offset.X))

	ship.AdvanceAnimation()

	s.BulletCooldown++
	if s.FireRequested && s.BulletCooldown >= parameter.BulletCooldown {
		s.World.Add(entity.NewBullet(core.Vec2{X: ship.Pos.X, Y: ship.Pos.Y + parameter.BulletSpawnOffsetY}))
		s.BulletCooldown = 0
		s.Emit(engine.EventShot, 0)
	}
	s.FireRequested = false
}
