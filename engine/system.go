package engine

import (
	"github.com/Heliodex/sprig/physics"
	"github.com/Heliodex/sprig/render"
)

// System advances simulation state once per executed frame
// Each system gates itself on Session.State
type System interface {
	Priority() int
	Update(s *Session)
}

// Renderer paints into the frame's draw pass after all systems ran
type Renderer interface {
	Priority() render.RenderPriority
	Render(s *Session, pass *physics.DrawPass)
}
