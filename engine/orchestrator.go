package engine

import (
	"fmt"
	"log"
	"sort"
	"sync/atomic"
	"time"

	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/entity"
	"github.com/Heliodex/sprig/physics"
	"github.com/Heliodex/sprig/render"
	"github.com/Heliodex/sprig/status"
)

// CollisionResolver applies the rule table to one overlapping pair
type CollisionResolver func(s *Session, drawn, occupant *entity.Entity)

// Orchestrator runs the per-frame pipeline: input, systems, draw pass, encode, host handoff
// Frame and Step must be called from the host's frame goroutine
type Orchestrator struct {
	session *Session
	host    Host

	systems   []System
	renderers []Renderer
	resolve   CollisionResolver
	onEvent   EventHandler

	buf     *core.PixelBuffer
	pass    *physics.DrawPass
	limiter *RateLimiter

	lastExec time.Time

	// Cached metric pointers
	statFrames     *atomic.Int64
	statSkipped    *atomic.Int64
	statEntities   *atomic.Int64
	statCollisions *atomic.Int64
	statScore      *atomic.Int64
	statFPS        *status.AtomicFloat
	statState      *status.AtomicString
	statSession    *status.AtomicString
}

// NewOrchestrator creates the frame pipeline for a session
// reg may be nil when metrics are not needed
func NewOrchestrator(s *Session, host Host, reg *status.Registry) *Orchestrator {
	if reg == nil {
		reg = status.NewRegistry()
	}
	buf := core.NewPixelBuffer()
	return &Orchestrator{
		session: s,
		host:    host,
		buf:     buf,
		pass:    physics.NewDrawPass(buf, s.Config.CollideOffscreenRows),
		limiter: NewRateLimiter(s.Config.FrameRate),

		statFrames:     reg.Ints.Get("frames"),
		statSkipped:    reg.Ints.Get("frames_skipped"),
		statEntities:   reg.Ints.Get("entities"),
		statCollisions: reg.Ints.Get("collisions"),
		statScore:      reg.Ints.Get("score"),
		statFPS:        reg.Floats.Get("fps"),
		statState:      reg.Strings.Get("state"),
		statSession:    reg.Strings.Get("session"),
	}
}

// Session returns the driven session
func (o *Orchestrator) Session() *Session {
	return o.session
}

// Buffer returns the framebuffer of the last executed frame
func (o *Orchestrator) Buffer() *core.PixelBuffer {
	return o.buf
}

// AddSystem registers a system, kept sorted by priority
func (o *Orchestrator) AddSystem(sys System) {
	o.systems = append(o.systems, sys)
	sort.SliceStable(o.systems, func(i, j int) bool {
		return o.systems[i].Priority() < o.systems[j].Priority()
	})
}

// AddRenderer registers a renderer, kept sorted by priority
func (o *Orchestrator) AddRenderer(r Renderer) {
	o.renderers = append(o.renderers, r)
	sort.SliceStable(o.renderers, func(i, j int) bool {
		return o.renderers[i].Priority() < o.renderers[j].Priority()
	})
}

// SetResolver installs the collision rule table
func (o *Orchestrator) SetResolver(fn CollisionResolver) {
	o.resolve = fn
}

// SetEventHandler installs the consumer of drained events
func (o *Orchestrator) SetEventHandler(fn EventHandler) {
	o.onEvent = fn
}

// Frame executes one step if the frame interval has elapsed since the last executed frame
// Returns false when the call was skipped; the host keeps rescheduling either way
func (o *Orchestrator) Frame(now time.Time) bool {
	if !o.limiter.Ready(now) {
		o.statSkipped.Add(1)
		return false
	}

	if !o.lastExec.IsZero() {
		if dt := now.Sub(o.lastExec); dt > 0 {
			o.statFPS.Set(float64(time.Second) / float64(dt))
		}
	}
	o.lastExec = now

	if err := o.Step(); err != nil {
		log.Printf("frame %d: %v", o.session.Frame, err)
	}
	return true
}

// Step executes one frame unconditionally
func (o *Orchestrator) Step() error {
	s := o.session

	s.ApplyInputs()

	o.buf.Clear(core.Background)
	if s.State.Simulating() && o.resolve != nil {
		o.pass.Begin(func(drawn, occupant *entity.Entity) {
			o.resolve(s, drawn, occupant)
		}, s.World.IsRemoved)
	} else {
		o.pass.Begin(nil, s.World.IsRemoved)
	}

	for _, sys := range o.systems {
		sys.Update(s)
	}
	for _, r := range o.renderers {
		r.Render(s, o.pass)
	}

	s.World.Compact()
	s.Frame++

	o.statFrames.Add(1)
	o.statEntities.Store(int64(s.World.Len()))
	o.statCollisions.Store(int64(o.pass.Collisions()))
	o.statScore.Store(int64(s.Score))
	o.statState.Store(s.State.String())
	o.statSession.Store(s.ID.String())

	events := s.DrainEvents()
	if o.onEvent != nil {
		for _, ev := range events {
			o.onEvent(ev)
		}
	}

	enc := render.Encode(o.buf)
	if err := o.host.SetLegend(enc.Legend...); err != nil {
		return fmt.Errorf("set legend: %w", err)
	}
	if err := o.host.SetMap(enc.Map); err != nil {
		return fmt.Errorf("set map: %w", err)
	}
	return nil
}
