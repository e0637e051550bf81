package parameter

// Ship
const (
	// ShipStartX and ShipStartY anchor the ship when a playthrough starts
	ShipStartX = 80
	ShipStartY = 112

	// ShipSpeed is horizontal pixels per frame while a move intent is held
	ShipSpeed = 3.0
)

// Bullet
const (
	// BulletSpeed is upward pixels per frame
	BulletSpeed = 4.0

	// BulletCooldown is the number of frames that must pass between shots
	BulletCooldown = 6

	// BulletSpawnOffsetY places a new bullet above the ship nose
	BulletSpawnOffsetY = -4

	// BulletCullY removes bullets once fully above the screen
	BulletCullY = -8
)
