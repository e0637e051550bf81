package system

import (
	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/parameter"
	"github.com/Heliodex/sprig/physics"
	"github.com/Heliodex/sprig/render"
)

type starLayer struct {
	speed float64
	color core.Color
	stars []core.Vec2
}

// Starfield scrolls two parallax layers of background stars
// It is both a system (scroll) and a renderer (paint); stars never collide
type Starfield struct {
	layers []*starLayer
	seeded bool
}

// NewStarfield creates an unseeded starfield; stars are placed from the session RNG on first update
func NewStarfield() *Starfield {
	return &Starfield{
		layers: []*starLayer{
			{speed: parameter.StarfieldFarSpeed, color: constant.GlyphDarkGrey, stars: make([]core.Vec2, parameter.StarfieldFarCount)},
			{speed: parameter.StarfieldNearSpeed, color: constant.GlyphLightGrey, stars: make([]core.Vec2, parameter.StarfieldNearCount)},
		},
	}
}

func (sf *Starfield) Priority() int {
	return parameter.PriorityStarfield
}

func (sf *Starfield) seed(s *engine.Session) {
	for _, l := range sf.layers {
		for i := range l.stars {
			l.stars[i] = core.Vec2{
				X: float64(s.Rand.IntN(constant.ScreenWidth)),
				Y: float64(s.Rand.IntN(constant.ScreenHeight)),
			}
		}
	}
	sf.seeded = true
}

// Update scrolls every layer down, wrapping stars to a new column at the top
func (sf *Starfield) Update(s *engine.Session) {
	if !sf.seeded {
		sf.seed(s)
	}
	if !s.State.Simulating() {
		return
	}

	for _, l := range sf.layers {
		for i := range l.stars {
			l.stars[i].Y += l.speed
			if l.stars[i].Y >= constant.ScreenHeight {
				l.stars[i].Y -= constant.ScreenHeight
				l.stars[i].X = float64(s.Rand.IntN(constant.ScreenWidth))
			}
		}
	}
}

// starfieldRenderer paints stars straight into the buffer, outside the collision pass
type starfieldRenderer struct {
	sf *Starfield
}

func (r starfieldRenderer) Priority() render.RenderPriority {
	return render.PriorityBackground
}

func (r starfieldRenderer) Render(s *engine.Session, pass *physics.DrawPass) {
	if s.State == engine.StateMenu || !r.sf.seeded {
		return
	}
	buf := pass.Buffer()
	for _, l := range r.sf.layers {
		for _, p := range l.stars {
			q := p.Round()
			buf.SetPixel(q.X, q.Y, l.color)
		}
	}
}

// Renderer returns the painting half of the starfield
func (sf *Starfield) Renderer() engine.Renderer {
	return starfieldRenderer{sf: sf}
}
