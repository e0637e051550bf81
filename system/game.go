package system

import (
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/status"
)

// Register installs the rule table, every system and every renderer on an orchestrator
func Register(o *engine.Orchestrator) {
	o.SetResolver(Resolve)

	starfield := NewStarfield()
	o.AddSystem(NewShipSystem())
	o.AddSystem(NewStageSystem())
	o.AddSystem(NewSpawnSystem())
	o.AddSystem(NewMotionSystem())
	o.AddSystem(starfield)

	o.AddRenderer(starfield.Renderer())
	o.AddRenderer(EntityRenderer{})
	o.AddRenderer(OverlayRenderer{})
	o.AddRenderer(ScoreRenderer{})
}

// NewGame builds a fully wired orchestrator for a session
func NewGame(s *engine.Session, host engine.Host, reg *status.Registry) *engine.Orchestrator {
	o := engine.NewOrchestrator(s, host, reg)
	Register(o)
	return o
}
