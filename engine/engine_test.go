package engine

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/entity"
	"github.com/Heliodex/sprig/physics"
	"github.com/Heliodex/sprig/render"
	"github.com/Heliodex/sprig/status"
)

func TestRateLimiter(t *testing.T) {
	mockTime := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rl := NewRateLimiter(30)

	if !rl.Ready(mockTime.Now()) {
		t.Fatal("Expected first frame to execute")
	}
	if rl.Ready(mockTime.Advance(10 * time.Millisecond)) {
		t.Error("Expected frame 10ms later to be skipped")
	}
	if rl.Ready(mockTime.Advance(20 * time.Millisecond)) {
		t.Error("Expected frame 30ms after the last executed frame to be skipped")
	}
	if !rl.Ready(mockTime.Advance(4 * time.Millisecond)) {
		t.Error("Expected frame 34ms after the last executed frame to execute")
	}
}

func TestValidateKey(t *testing.T) {
	for _, k := range constant.ValidInputs {
		if err := ValidateKey(k); err != nil {
			t.Errorf("Expected %q to be valid, got %v", k, err)
		}
	}

	err := ValidateKey("x")
	if !errors.Is(err, ErrUnknownInput) {
		t.Fatalf("Expected ErrUnknownInput, got %v", err)
	}
	if !strings.Contains(err.Error(), `"x"`) || !strings.Contains(err.Error(), "w, s, a, d, i, j, k, l") {
		t.Errorf("Expected error to name the key and the valid set, got %q", err)
	}
}

func TestInputRegistry(t *testing.T) {
	reg := NewInputRegistry()
	s := NewTestSession()
	if err := BindInputs(reg, s); err != nil {
		t.Fatalf("BindInputs failed: %v", err)
	}

	if err := reg.OnInput("q", func() {}); !errors.Is(err, ErrUnknownInput) {
		t.Errorf("Expected ErrUnknownInput, got %v", err)
	}

	if !reg.Dispatch("i") {
		t.Fatal("Expected a handler for i")
	}
	if s.State != StateMenu {
		t.Error("Expected handlers to queue, not apply")
	}
	s.ApplyInputs()
	if s.State != StatePlaying {
		t.Errorf("Expected playing after applying input, got %s", s.State)
	}
}

func TestValidateLegend(t *testing.T) {
	if err := ValidateLegend(nil); !errors.Is(err, ErrInvalidLegend) {
		t.Errorf("Expected ErrInvalidLegend for empty legend, got %v", err)
	}
	if err := ValidateLegend([]render.LegendEntry{{ID: '.'}}); !errors.Is(err, ErrInvalidLegend) {
		t.Errorf("Expected ErrInvalidLegend for reserved id, got %v", err)
	}
	if err := ValidateLegend([]render.LegendEntry{{ID: 'A'}}); err != nil {
		t.Errorf("Expected valid legend, got %v", err)
	}
}

func TestWorldDeferredRemoval(t *testing.T) {
	w := NewWorld()
	a := entity.NewEnemy(core.Vec2{}, core.Vec2{}, false)
	b := entity.NewEnemy(core.Vec2{}, core.Vec2{}, false)
	c := entity.NewBullet(core.Vec2{})
	w.Add(a)
	w.Add(b)
	w.Add(c)

	if !w.Remove(b) {
		t.Fatal("Expected first removal to succeed")
	}
	if w.Remove(b) {
		t.Error("Expected second removal to report false")
	}
	if len(w.All()) != 3 {
		t.Error("Expected removed entity to stay until Compact")
	}
	if w.Count(entity.KindEnemy) != 1 || w.Len() != 2 {
		t.Errorf("Expected 1 live enemy and 2 live entities, got %d and %d", w.Count(entity.KindEnemy), w.Len())
	}

	w.Compact()
	all := w.All()
	if len(all) != 2 || all[0] != a || all[1] != c {
		t.Error("Expected compaction to keep insertion order")
	}
	if w.IsRemoved(b) {
		t.Error("Expected removed set cleared after Compact")
	}
}

type countingSystem struct {
	priority int
	calls    *[]int
}

func (c countingSystem) Priority() int { return c.priority }
func (c countingSystem) Update(*Session) {
	*c.calls = append(*c.calls, c.priority)
}

type pixelRenderer struct{}

func (pixelRenderer) Priority() render.RenderPriority { return render.PriorityUI }
func (pixelRenderer) Render(_ *Session, pass *physics.DrawPass) {
	pass.Buffer().SetPixel(0, 0, constant.GlyphWhite)
}

func TestOrchestratorFrame(t *testing.T) {
	s := NewTestSession()
	host := &RecordingHost{}
	reg := status.NewRegistry()
	o := NewOrchestrator(s, host, reg)

	var calls []int
	o.AddSystem(countingSystem{priority: 20, calls: &calls})
	o.AddSystem(countingSystem{priority: 10, calls: &calls})
	o.AddRenderer(pixelRenderer{})

	mockTime := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if !o.Frame(mockTime.Now()) {
		t.Fatal("Expected first frame to execute")
	}
	if o.Frame(mockTime.Advance(time.Millisecond)) {
		t.Error("Expected immediate second frame to be skipped")
	}
	if !o.Frame(mockTime.Advance(constant.FrameInterval)) {
		t.Error("Expected frame after one interval to execute")
	}

	if len(calls) != 4 || calls[0] != 10 || calls[1] != 20 {
		t.Errorf("Expected systems in priority order twice, got %v", calls)
	}
	if host.Handoffs != 2 {
		t.Errorf("Expected 2 host handoffs, got %d", host.Handoffs)
	}
	if len(host.Legend) != constant.TileCount {
		t.Errorf("Expected %d legend entries, got %d", constant.TileCount, len(host.Legend))
	}
	if !host.Contains(constant.GlyphWhite) {
		t.Error("Expected rendered pixel in the handed-off legend")
	}
	if s.Frame != 2 {
		t.Errorf("Expected frame counter 2, got %d", s.Frame)
	}
	if got := reg.Ints.Get("frames_skipped").Load(); got != 1 {
		t.Errorf("Expected 1 skipped frame, got %d", got)
	}
}

func TestOrchestratorHostError(t *testing.T) {
	s := NewTestSession()
	hostErr := errors.New("host gone")
	o := NewOrchestrator(s, &RecordingHost{Err: hostErr}, nil)

	if err := o.Step(); !errors.Is(err, hostErr) {
		t.Errorf("Expected host error to propagate, got %v", err)
	}
}

func TestEventsDrainedPerFrame(t *testing.T) {
	s := NewTestSession()
	o := NewOrchestrator(s, &RecordingHost{}, nil)

	var got []EventType
	o.SetEventHandler(func(ev Event) { got = append(got, ev.Type) })

	s.PushInput("i")
	if err := o.Step(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != EventStateChange {
		t.Errorf("Expected one state change event, got %v", got)
	}
	if len(s.DrainEvents()) != 0 {
		t.Error("Expected events drained after the frame")
	}
}
