package parameter

// System execution order. Lower values run first
const (
	PriorityShip      = 10
	PriorityStage     = 20
	PrioritySpawn     = 30
	PriorityMotion    = 40
	PriorityStarfield = 50
)
