package system

import (
	"log"

	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/entity"
	"github.com/Heliodex/sprig/parameter"
)

// collisionRule matches a canonically ordered kind pair
// when may be nil; the first matching rule wins
type collisionRule struct {
	first, second entity.Kind
	when          func(s *engine.Session, a, b *entity.Entity) bool
	apply         func(s *engine.Session, a, b *entity.Entity)
}

var collisionRules = []collisionRule{
	{
		first: entity.KindBullet, second: entity.KindEnemy,
		apply: func(s *engine.Session, bullet, enemy *entity.Entity) {
			s.World.Remove(bullet)
			s.World.Remove(enemy)
			explode(s, enemy.Pos)
			s.World.Add(entity.NewSmallEnemy(enemy.Pos, enemy.Vel, enemy.SuddenDeath))
			s.AddScore(parameter.ScoreEnemy)
		},
	},
	{
		first: entity.KindBullet, second: entity.KindSmallEnemy,
		apply: func(s *engine.Session, bullet, small *entity.Entity) {
			s.World.Remove(bullet)
			s.World.Remove(small)
			explode(s, small.Pos)
			s.AddScore(parameter.ScoreSmallEnemy)
		},
	},
	{
		first: entity.KindEnemy, second: entity.KindShip,
		apply: destroyShip,
	},
	{
		first: entity.KindShip, second: entity.KindSmallEnemy,
		apply: destroyShip,
	},
	{
		first: entity.KindSmallEnemy, second: entity.KindSmallEnemy,
		when: func(s *engine.Session, a, b *entity.Entity) bool {
			return a.Immunity < 0 && b.Immunity < 0 && s.Stage < parameter.HardenedStage
		},
		apply: func(s *engine.Session, a, b *entity.Entity) {
			s.World.Remove(a)
			s.World.Remove(b)
			explode(s, a.Pos)
			explode(s, b.Pos)
		},
	},
	{
		first: entity.KindEnemy, second: entity.KindSmallEnemy,
		when: func(_ *engine.Session, _, small *entity.Entity) bool {
			return small.Immunity < 0
		},
		apply: func(s *engine.Session, enemy, small *entity.Entity) {
			s.World.Remove(enemy)
			s.World.Add(entity.NewSmallEnemy(enemy.Pos, enemy.Vel, enemy.SuddenDeath))
			if s.Stage < parameter.HardenedStage {
				s.World.Remove(small)
				explode(s, small.Pos)
			}
		},
	},
	{
		first: entity.KindEnemy, second: entity.KindEnemy,
		apply: func(s *engine.Session, a, b *entity.Entity) {
			s.World.Remove(a)
			s.World.Remove(b)
			hardened := s.Stage >= parameter.HardenedStage
			for _, parent := range []*entity.Entity{a, b} {
				vel := core.Vec2{X: -parent.Vel.X, Y: parent.Vel.Y}
				s.World.Add(entity.NewSmallEnemy(parent.Pos, vel, parent.SuddenDeath && hardened))
			}
		},
	},
}

// canonical orders a pair by kind name so (A, B) and (B, A) select the same rule
func canonical(a, b *entity.Entity) (*entity.Entity, *entity.Entity) {
	if a.Kind.String() > b.Kind.String() {
		return b, a
	}
	return a, b
}

// Resolve applies the first matching collision rule; unmatched pairs are ignored
func Resolve(s *engine.Session, drawn, occupant *entity.Entity) {
	a, b := canonical(drawn, occupant)
	for _, r := range collisionRules {
		if r.first != a.Kind || r.second != b.Kind {
			continue
		}
		if r.when != nil && !r.when(s, a, b) {
			continue
		}
		r.apply(s, a, b)
		return
	}
}

func explode(s *engine.Session, pos core.Vec2) {
	s.World.Add(entity.NewExplosion(pos))
	s.Emit(engine.EventExplosion, 0)
}

func destroyShip(s *engine.Session, a, b *entity.Entity) {
	s.World.Remove(a)
	s.World.Remove(b)
	explode(s, a.Pos)
	explode(s, b.Pos)
	s.Emit(engine.EventShipDestroyed, s.Score)

	if s.State == engine.StatePlaying {
		if err := s.Transition(engine.StateOver); err != nil {
			log.Printf("ship destroyed: %v", err)
		}
	}
}
