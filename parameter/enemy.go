package parameter

// Hostile spawn placement and motion
const (
	// HostileSpawnMinX and HostileSpawnMaxX bound the spawn column, off-screen starts allowed
	HostileSpawnMinX = -40
	HostileSpawnMaxX = 200

	// HostileSpawnY is just above the visible area
	HostileSpawnY = -8

	// HostileMaxVX is the horizontal speed range (±) before difficulty scaling
	HostileMaxVX = 1.0
	// HostileMinVY and HostileMaxVY bound the downward speed before difficulty scaling
	HostileMinVY = 0.5
	HostileMaxVY = 1.5

	// HostileCullMargin is how far outside the screen a hostile may drift before removal
	HostileCullMargin = 64
)

// SmallEnemy
const (
	// SmallEnemyImmunity is the number of frames a fresh SmallEnemy ignores hostile collisions
	SmallEnemyImmunity = 10
)

// Sudden death homing
const (
	// HomingAccel is velocity gained toward the ship per frame
	HomingAccel = 0.04
	// HomingMaxSpeed caps homing speed before difficulty scaling
	HomingMaxSpeed = 2.0
)

// Starfield
const (
	StarfieldFarCount  = 24
	StarfieldFarSpeed  = 0.5
	StarfieldNearCount = 12
	StarfieldNearSpeed = 1.0
)
