package physics

import "github.com/Heliodex/sprig/core"

// HomingProfile defines homing behavior parameters
type HomingProfile struct {
	Accel    float64 // velocity gained toward the target per frame
	MaxSpeed float64 // speed cap before the multiplier
}

// ApplyHoming steers vel toward target and returns the new velocity
// speedMultiplier scales the cap for progressive difficulty
func ApplyHoming(pos, vel, target core.Vec2, profile *HomingProfile, speedMultiplier float64) core.Vec2 {
	d := target.Sub(pos)
	dist := d.Length()
	if dist > 0 {
		vel = vel.Add(d.Scale(profile.Accel / dist))
	}

	maxSpeed := profile.MaxSpeed * speedMultiplier
	if speed := vel.Length(); speed > maxSpeed && speed > 0 {
		vel = vel.Scale(maxSpeed / speed)
	}
	return vel
}
