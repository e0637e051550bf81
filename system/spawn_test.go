package system

import (
	"testing"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/entity"
)

func TestDifficultyStaircase(t *testing.T) {
	tests := []struct {
		score    int
		interval int
		prob     float64
		mult     float64
	}{
		{0, 60, 0.10, 1.00},
		{1999, 60, 0.10, 1.00},
		{2000, 45, 0.10, 1.00},
		{5000, 35, 0.20, 1.25},
		{10000, 28, 0.20, 1.25},
		{15000, 22, 0.30, 1.50},
		{24999, 22, 0.30, 1.50},
		{25000, 18, 0.30, 1.50},
		{40000, 14, 0.40, 1.75},
		{70000, 10, 0.50, 2.00},
		{1000000, 10, 0.50, 2.00},
	}

	for _, tt := range tests {
		if got := SpawnInterval(tt.score); got != tt.interval {
			t.Errorf("SpawnInterval(%d): expected %d, got %d", tt.score, tt.interval, got)
		}
		if got := SmallEnemyProbability(tt.score); got != tt.prob {
			t.Errorf("SmallEnemyProbability(%d): expected %v, got %v", tt.score, tt.prob, got)
		}
		if got := VelocityMultiplier(tt.score); got != tt.mult {
			t.Errorf("VelocityMultiplier(%d): expected %v, got %v", tt.score, tt.mult, got)
		}
	}
}

func TestDifficultyMonotone(t *testing.T) {
	prevInterval, prevProb, prevMult := SpawnInterval(0), SmallEnemyProbability(0), VelocityMultiplier(0)
	for score := 0; score <= 80000; score += 100 {
		interval, prob, mult := SpawnInterval(score), SmallEnemyProbability(score), VelocityMultiplier(score)
		if interval > prevInterval || prob < prevProb || mult < prevMult {
			t.Fatalf("Expected monotone staircase at score %d", score)
		}
		prevInterval, prevProb, prevMult = interval, prob, mult
	}
}

func TestSpawnCadence(t *testing.T) {
	s := newPlayingSession(t)
	sys := NewSpawnSystem()

	for i := 0; i < SpawnInterval(0); i++ {
		sys.Update(s)
	}
	if n := s.World.Len(); n != 0 {
		t.Fatalf("Expected no spawn before the interval is exceeded, got %d", n)
	}

	sys.Update(s)
	if n := s.World.Count(entity.KindEnemy) + s.World.Count(entity.KindSmallEnemy); n != 1 {
		t.Errorf("Expected one hostile, got %d", n)
	}
	if s.SpawnCounter != 0 {
		t.Errorf("Expected counter reset, got %d", s.SpawnCounter)
	}
}

func TestSpawnOnlyWhilePlaying(t *testing.T) {
	s := newPlayingSession(t)
	if err := s.Transition(engine.StateOver); err != nil {
		t.Fatal(err)
	}
	sys := NewSpawnSystem()
	for i := 0; i < 200; i++ {
		sys.Update(s)
	}
	if s.World.Len() != 0 {
		t.Errorf("Expected no spawns in over, got %d", s.World.Len())
	}
}

func TestSpawnHostileRanges(t *testing.T) {
	s := newPlayingSession(t)
	s.Score = 70000
	s.Stage = 3

	for i := 0; i < 500; i++ {
		e := SpawnHostile(s)
		if e.Pos.X < -40 || e.Pos.X >= 200 {
			t.Fatalf("Expected x in [-40, 200), got %f", e.Pos.X)
		}
		if e.Vel.X < -2 || e.Vel.X > 2 || e.Vel.Y < 1 || e.Vel.Y > 3 {
			t.Fatalf("Expected velocity scaled by 2, got %v", e.Vel)
		}
		if !e.SuddenDeath {
			t.Fatal("Expected sudden death from stage 3")
		}
	}
}

func TestImmunityAgesPerFrame(t *testing.T) {
	s := newPlayingSession(t)
	small := entity.NewSmallEnemy(core.Vec2{X: 80, Y: 60}, core.Vec2{}, false)
	s.World.Add(small)
	sys := NewMotionSystem()

	start := small.Immunity
	for i := 1; i <= 12; i++ {
		sys.Update(s)
		if small.Immunity != start-i {
			t.Fatalf("Expected immunity %d after %d frames, got %d", start-i, i, small.Immunity)
		}
	}
}

func TestMotionCullsAndRetires(t *testing.T) {
	s := newPlayingSession(t)
	bullet := entity.NewBullet(core.Vec2{X: 10, Y: -6})
	explosion := entity.NewExplosion(core.Vec2{X: 10, Y: 10})
	far := entity.NewEnemy(core.Vec2{X: constant.ScreenWidth + 100, Y: 10}, core.Vec2{}, false)
	s.World.Add(bullet)
	s.World.Add(explosion)
	s.World.Add(far)

	sys := NewMotionSystem()
	sys.Update(s)
	if !s.World.IsRemoved(bullet) || !s.World.IsRemoved(far) {
		t.Error("Expected off-screen bullet and hostile removed")
	}

	for i := 0; i < 20 && !s.World.IsRemoved(explosion); i++ {
		sys.Update(s)
	}
	if !s.World.IsRemoved(explosion) {
		t.Error("Expected explosion removed once its frames are exhausted")
	}
}

func TestHomingTowardShip(t *testing.T) {
	s := engine.NewTestSession()
	if err := s.Transition(engine.StatePlaying); err != nil {
		t.Fatal(err)
	}
	hostile := entity.NewEnemy(core.Vec2{X: 20, Y: 20}, core.Vec2{}, true)
	s.World.Add(hostile)

	NewMotionSystem().Update(s)
	if hostile.Vel.X <= 0 || hostile.Vel.Y <= 0 {
		t.Errorf("Expected velocity toward the ship, got %v", hostile.Vel)
	}
}
