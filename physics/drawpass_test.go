package physics

import (
	"testing"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/entity"
)

type pairRecorder struct {
	pairs   [][2]*entity.Entity
	removed map[*entity.Entity]bool
	remove  bool
}

func (r *pairRecorder) resolve(a, b *entity.Entity) {
	r.pairs = append(r.pairs, [2]*entity.Entity{a, b})
	if r.remove {
		r.removed[a] = true
		r.removed[b] = true
	}
}

func (r *pairRecorder) isRemoved(e *entity.Entity) bool {
	return r.removed[e]
}

func newRecorder(remove bool) *pairRecorder {
	return &pairRecorder{removed: make(map[*entity.Entity]bool), remove: remove}
}

func TestDrawPaintsFrame(t *testing.T) {
	buf := core.NewPixelBuffer()
	pass := NewDrawPass(buf, false)
	pass.Begin(nil, nil)

	b := entity.NewBullet(core.Vec2{X: 10, Y: 20})
	pass.Draw(b, nil)

	if c := buf.Pixel(10, 20); c != constant.GlyphYellow {
		t.Errorf("Expected yellow at (10, 20), got %q", c)
	}
	if c := buf.Pixel(10, 22); c != constant.GlyphOrange {
		t.Errorf("Expected orange at (10, 22), got %q", c)
	}
}

func TestDrawAppliesPalette(t *testing.T) {
	buf := core.NewPixelBuffer()
	pass := NewDrawPass(buf, false)
	pass.Begin(nil, nil)

	pal := entity.NewPalette()
	if err := pal.Substitute(constant.GlyphRed, constant.GlyphOrange); err != nil {
		t.Fatal(err)
	}

	e := entity.NewSmallEnemy(core.Vec2{X: 50, Y: 50}, core.Vec2{}, false)
	pass.Draw(e, pal)

	// Row 1 ".333." is solid in the middle
	if c := buf.Pixel(50, 49); c != constant.GlyphOrange {
		t.Errorf("Expected recoloured pixel, got %q", c)
	}
}

func TestOverlapResolvesOncePerDraw(t *testing.T) {
	buf := core.NewPixelBuffer()
	pass := NewDrawPass(buf, false)
	rec := newRecorder(false)
	pass.Begin(rec.resolve, rec.isRemoved)

	a := entity.NewEnemy(core.Vec2{X: 40, Y: 40}, core.Vec2{}, false)
	b := entity.NewEnemy(core.Vec2{X: 40, Y: 40}, core.Vec2{}, false)
	pass.Draw(a, nil)
	pass.Draw(b, nil)

	if len(rec.pairs) != 1 {
		t.Fatalf("Expected 1 resolution, got %d", len(rec.pairs))
	}
	if rec.pairs[0][0] != b || rec.pairs[0][1] != a {
		t.Error("Expected (drawn, occupant) order")
	}
	if pass.Collisions() != 1 {
		t.Errorf("Expected 1 collision, got %d", pass.Collisions())
	}
}

func TestPartnerSetIsPerDrawCall(t *testing.T) {
	buf := core.NewPixelBuffer()
	pass := NewDrawPass(buf, false)
	rec := newRecorder(false)
	pass.Begin(rec.resolve, rec.isRemoved)

	a := entity.NewEnemy(core.Vec2{X: 40, Y: 40}, core.Vec2{}, false)
	b := entity.NewEnemy(core.Vec2{X: 40, Y: 40}, core.Vec2{}, false)
	pass.Draw(a, nil)
	pass.Draw(b, nil)
	// Drawing a again is a new call and meets b again
	pass.Draw(a, nil)

	if len(rec.pairs) != 2 {
		t.Errorf("Expected a second resolution in a later draw call, got %d", len(rec.pairs))
	}
}

func TestRemovedEntitiesDoNotCollide(t *testing.T) {
	buf := core.NewPixelBuffer()
	pass := NewDrawPass(buf, false)
	rec := newRecorder(true)
	pass.Begin(rec.resolve, rec.isRemoved)

	a := entity.NewEnemy(core.Vec2{X: 40, Y: 40}, core.Vec2{}, false)
	b := entity.NewEnemy(core.Vec2{X: 40, Y: 40}, core.Vec2{}, false)
	c := entity.NewEnemy(core.Vec2{X: 40, Y: 40}, core.Vec2{}, false)
	pass.Draw(a, nil)
	pass.Draw(b, nil)
	pass.Draw(c, nil)

	if len(rec.pairs) != 1 {
		t.Errorf("Expected only the first pair to resolve, got %d", len(rec.pairs))
	}
}

func TestNonCollidableIgnored(t *testing.T) {
	buf := core.NewPixelBuffer()
	pass := NewDrawPass(buf, false)
	rec := newRecorder(false)
	pass.Begin(rec.resolve, rec.isRemoved)

	pass.Draw(entity.NewExplosion(core.Vec2{X: 40, Y: 40}), nil)
	pass.Draw(entity.NewEnemy(core.Vec2{X: 40, Y: 40}, core.Vec2{}, false), nil)

	if len(rec.pairs) != 0 {
		t.Errorf("Expected no resolution against an explosion, got %d", len(rec.pairs))
	}
}

func TestBeginResetsOccupancy(t *testing.T) {
	buf := core.NewPixelBuffer()
	pass := NewDrawPass(buf, false)
	rec := newRecorder(false)

	a := entity.NewEnemy(core.Vec2{X: 40, Y: 40}, core.Vec2{}, false)
	b := entity.NewEnemy(core.Vec2{X: 40, Y: 40}, core.Vec2{}, false)

	pass.Begin(rec.resolve, rec.isRemoved)
	pass.Draw(a, nil)
	pass.Begin(rec.resolve, rec.isRemoved)
	pass.Draw(b, nil)

	if len(rec.pairs) != 0 {
		t.Errorf("Expected occupancy to reset between frames, got %d pairs", len(rec.pairs))
	}
}

func TestClipping(t *testing.T) {
	tests := []struct {
		name      string
		aliasRows bool
		pos       core.Vec2
		wantPairs int
	}{
		{"left of screen", false, core.Vec2{X: -20, Y: 40}, 0},
		{"above screen clipped", false, core.Vec2{X: 40, Y: -20}, 0},
		{"above screen collides offscreen", true, core.Vec2{X: 40, Y: -20}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := core.NewPixelBuffer()
			ref := core.NewPixelBuffer()
			pass := NewDrawPass(buf, tt.aliasRows)
			rec := newRecorder(false)
			pass.Begin(rec.resolve, rec.isRemoved)

			pass.Draw(entity.NewEnemy(tt.pos, core.Vec2{}, false), nil)
			pass.Draw(entity.NewEnemy(tt.pos, core.Vec2{}, false), nil)

			if len(rec.pairs) != tt.wantPairs {
				t.Errorf("Expected %d pairs, got %d", tt.wantPairs, len(rec.pairs))
			}
			if !buf.Equal(ref) {
				t.Error("Expected nothing painted for a fully off-screen entity")
			}
		})
	}
}

func TestApplyHomingCapsSpeed(t *testing.T) {
	profile := &HomingProfile{Accel: 1, MaxSpeed: 2}
	vel := core.Vec2{}
	for i := 0; i < 10; i++ {
		vel = ApplyHoming(core.Vec2{}, vel, core.Vec2{X: 100}, profile, 1.5)
	}
	if vel.X <= 0 {
		t.Errorf("Expected velocity toward target, got %v", vel)
	}
	if s := vel.Length(); s > 3.0+1e-9 {
		t.Errorf("Expected speed capped at 3, got %f", s)
	}
}

func TestIntegrateAndClamp(t *testing.T) {
	e := entity.NewEnemy(core.Vec2{X: 1, Y: 1}, core.Vec2{X: -2, Y: 0.5}, false)
	p := Integrate(e)
	if p != (core.Point{X: -1, Y: 2}) {
		t.Errorf("Expected (-1, 2), got %v", p)
	}
	if !ClampX(e, 0, 10) || e.Pos.X != 0 {
		t.Errorf("Expected clamp to 0, got %f", e.Pos.X)
	}
}
