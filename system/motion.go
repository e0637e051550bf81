package system

import (
	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/entity"
	"github.com/Heliodex/sprig/parameter"
	"github.com/Heliodex/sprig/physics"
)

var homingProfile = &physics.HomingProfile{
	Accel:    parameter.HomingAccel,
	MaxSpeed: parameter.HomingMaxSpeed,
}

// MotionSystem moves bullets and hostiles, ages immunity and retires finished explosions
// Runs while playing and after game over so the scene keeps moving behind the banner
type MotionSystem struct{}

// NewMotionSystem creates the motion system
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (sys *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (sys *MotionSystem) Update(s *engine.Session) {
	if !s.State.Simulating() {
		return
	}

	ship, hasShip := s.Ship()
	mult := VelocityMultiplier(s.Score)

	for _, e := range s.World.All() {
		if s.World.IsRemoved(e) {
			continue
		}

		switch e.Kind {
		case entity.KindBullet:
			physics.Integrate(e)
			if e.Pos.Y < parameter.BulletCullY {
				s.World.Remove(e)
			}

		case entity.KindEnemy, entity.KindSmallEnemy:
			if e.SuddenDeath && hasShip {
				e.Vel = physics.ApplyHoming(e.Pos, e.Vel, ship.Pos, homingProfile, mult)
			}
			physics.Integrate(e)
			if e.Kind == entity.KindSmallEnemy {
				e.Immunity--
			}
			e.AdvanceAnimation()
			if physics.OutsideMargin(e, constant.ScreenWidth, constant.ScreenHeight, parameter.HostileCullMargin) {
				s.World.Remove(e)
			}

		case entity.KindExplosion:
			physics.Integrate(e)
			if e.AdvanceAnimation() {
				s.World.Remove(e)
			}
		}
	}
}
