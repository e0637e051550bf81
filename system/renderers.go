package system

import (
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/entity"
	"github.com/Heliodex/sprig/physics"
	"github.com/Heliodex/sprig/render"
)

// EntityRenderer draws every live entity in world order, which is where collisions are detected
type EntityRenderer struct{}

func (EntityRenderer) Priority() render.RenderPriority {
	return render.PriorityEntities
}

func (EntityRenderer) Render(s *engine.Session, pass *physics.DrawPass) {
	if s.State == engine.StateMenu {
		return
	}
	for _, e := range s.World.All() {
		if s.World.IsRemoved(e) {
			continue
		}
		var pal *entity.Palette
		if e.Kind.IsHostile() {
			pal = s.Palette
		}
		pass.Draw(e, pal)
	}
}

// OverlayRenderer composites the Intro in menu and the GameOverBanner in over
type OverlayRenderer struct{}

func (OverlayRenderer) Priority() render.RenderPriority {
	return render.PriorityOverlay
}

func (OverlayRenderer) Render(s *engine.Session, pass *physics.DrawPass) {
	if s.Overlay == nil {
		return
	}
	if s.State != engine.StateMenu && s.State != engine.StateOver {
		return
	}
	s.Overlay.AdvanceAnimation()
	pass.Draw(s.Overlay, nil)
}

const (
	scoreX       = 2
	scoreY       = 2
	scoreAdvance = 4
)

// ScoreRenderer draws the integer score in the top-left corner outside the menu
type ScoreRenderer struct{}

func (ScoreRenderer) Priority() render.RenderPriority {
	return render.PriorityUI
}

func (ScoreRenderer) Render(s *engine.Session, pass *physics.DrawPass) {
	if s.State == engine.StateMenu {
		return
	}
	for i, d := range ScoreDigits(s.Score) {
		pass.Draw(entity.NewScoreDigit(d, core.Vec2{X: float64(scoreX + i*scoreAdvance), Y: scoreY}), nil)
	}
}

// ScoreDigits splits a non-negative score into decimal digits, most significant first
func ScoreDigits(score int) []int {
	if score <= 0 {
		return []int{0}
	}
	var digits []int
	for ; score > 0; score /= 10 {
		digits = append([]int{score % 10}, digits...)
	}
	return digits
}
