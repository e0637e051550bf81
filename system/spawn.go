package system

import (
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/entity"
	"github.com/Heliodex/sprig/parameter"
)

// SpawnInterval returns the number of frames between hostile spawns at a score
func SpawnInterval(score int) int {
	interval := parameter.SpawnIntervals[0].Interval
	for _, step := range parameter.SpawnIntervals {
		if score >= step.MinScore {
			interval = step.Interval
		}
	}
	return interval
}

// SmallEnemyProbability returns the chance a spawn is a SmallEnemy at a score
func SmallEnemyProbability(score int) float64 {
	p := parameter.SmallEnemyProbabilities[0].Probability
	for _, step := range parameter.SmallEnemyProbabilities {
		if score >= step.MinScore {
			p = step.Probability
		}
	}
	return p
}

// VelocityMultiplier returns the hostile speed scale at a score
func VelocityMultiplier(score int) float64 {
	m := parameter.VelocityMultipliers[0].Multiplier
	for _, step := range parameter.VelocityMultipliers {
		if score >= step.MinScore {
			m = step.Multiplier
		}
	}
	return m
}

// SpawnSystem releases hostiles on a score-driven cadence while playing
type SpawnSystem struct{}

// NewSpawnSystem creates the spawner
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority runs after the stage update so new hostiles see the current stage
func (sys *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update counts frames and spawns once the interval is exceeded
func (sys *SpawnSystem) Update(s *engine.Session) {
	if s.State != engine.StatePlaying {
		return
	}

	s.SpawnCounter++
	if s.SpawnCounter <= SpawnInterval(s.Score) {
		return
	}
	s.SpawnCounter = 0
	s.World.Add(SpawnHostile(s))
}

// SpawnHostile creates one randomly placed hostile scaled to the current score
func SpawnHostile(s *engine.Session) *entity.Entity {
	r := s.Rand
	mult := VelocityMultiplier(s.Score)

	pos := core.Vec2{
		X: parameter.HostileSpawnMinX + r.Float64()*(parameter.HostileSpawnMaxX-parameter.HostileSpawnMinX),
		Y: parameter.HostileSpawnY,
	}
	vel := core.Vec2{
		X: (r.Float64()*2 - 1) * parameter.HostileMaxVX,
		Y: parameter.HostileMinVY + r.Float64()*(parameter.HostileMaxVY-parameter.HostileMinVY),
	}.Scale(mult)

	suddenDeath := s.Stage >= parameter.SuddenDeathStage
	if r.Float64() < SmallEnemyProbability(s.Score) {
		return entity.NewSmallEnemy(pos, vel, suddenDeath)
	}
	return entity.NewEnemy(pos, vel, suddenDeath)
}
