package terminal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/render"
	"github.com/Heliodex/sprig/system"
)

func newSimHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(constant.ScreenWidth, CellRows+4)
	t.Cleanup(screen.Fini)
	return New(screen), screen
}

func solidTile(glyph byte) string {
	row := strings.Repeat(string(glyph), constant.TileSize) + "\n"
	return strings.Repeat(row, constant.TileSize)
}

func TestSetLegendRejectsReservedID(t *testing.T) {
	h, _ := newSimHost(t)
	err := h.SetLegend(render.LegendEntry{ID: '.', Bitmap: solidTile(constant.GlyphRed)})
	if !errors.Is(err, engine.ErrInvalidLegend) {
		t.Errorf("Expected ErrInvalidLegend, got %v", err)
	}
	if err := h.SetLegend(); !errors.Is(err, engine.ErrInvalidLegend) {
		t.Errorf("Expected empty legend to fail, got %v", err)
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	h, screen := newSimHost(t)

	if err := h.SetLegend(render.LegendEntry{ID: 'A', Bitmap: solidTile(constant.GlyphRed)}); err != nil {
		t.Fatalf("SetLegend failed: %v", err)
	}
	if err := h.SetMap("A"); err != nil {
		t.Fatalf("SetMap failed: %v", err)
	}
	if !h.Draw() {
		t.Fatal("Expected first draw to paint")
	}
	if h.Draw() {
		t.Error("Expected no repaint without a new handoff")
	}

	cells, w, _ := screen.GetContents()
	red := render.Palette[constant.GlyphRed]

	cell := cells[0]
	if len(cell.Runes) == 0 || cell.Runes[0] != upperHalf {
		t.Fatalf("Expected half block at 0,0, got %v", cell.Runes)
	}
	fg, bg, _ := cell.Style.Decompose()
	if r, g, b := fg.RGB(); r != int32(red.R) || g != int32(red.G) || b != int32(red.B) {
		t.Errorf("Expected red foreground, got %d,%d,%d", r, g, b)
	}
	if r, g, b := bg.RGB(); r != int32(red.R) || g != int32(red.G) || b != int32(red.B) {
		t.Errorf("Expected red background, got %d,%d,%d", r, g, b)
	}

	// Outside the single tile the frame is background
	outside := cells[(constant.TileSize/2)*w+constant.TileSize]
	fg, _, _ = outside.Style.Decompose()
	if r, g, b := fg.RGB(); r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected black outside the tile, got %d,%d,%d", r, g, b)
	}
}

func TestStatusLines(t *testing.T) {
	h, screen := newSimHost(t)
	h.SetStatus(func() []string { return []string{"score: 42"} })
	h.SetLegend(render.LegendEntry{ID: 'A', Bitmap: solidTile(constant.GlyphBlack)})
	h.SetMap("A")
	h.Draw()

	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < len("score: 42"); x++ {
		sb.WriteString(string(cells[CellRows*w+x].Runes))
	}
	if sb.String() != "score: 42" {
		t.Errorf("Expected status line, got %q", sb.String())
	}
}

func TestLogicalKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		key  string
		ok   bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), constant.KeyLeft, true},
		{"upper", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), constant.KeyRight, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), constant.KeyFire, true},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), constant.KeyLeft, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), constant.KeyStart, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := LogicalKey(tt.ev)
			if key != tt.key || ok != tt.ok {
				t.Errorf("Expected (%q, %t), got (%q, %t)", tt.key, tt.ok, key, ok)
			}
		})
	}
}

func TestHandleEventDispatches(t *testing.T) {
	h, _ := newSimHost(t)
	var got []string
	for _, k := range constant.ValidInputs {
		k := k
		h.OnInput(k, func() { got = append(got, k) })
	}

	if h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone)) {
		t.Error("Expected 'i' not to quit")
	}
	if !h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected escape to quit")
	}
	if len(got) != 1 || got[0] != constant.KeyStart {
		t.Errorf("Expected one start dispatch, got %v", got)
	}
}

func TestRunDrivesFrames(t *testing.T) {
	h, _ := newSimHost(t)
	s := engine.NewTestSession()
	if err := engine.BindInputs(h, s); err != nil {
		t.Fatalf("BindInputs failed: %v", err)
	}
	orch := system.NewGame(s, h, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := h.Run(ctx, orch); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if s.Frame == 0 {
		t.Error("Expected at least one executed frame")
	}
}

func TestRunQuitKey(t *testing.T) {
	h, screen := newSimHost(t)
	s := engine.NewTestSession()
	orch := system.NewGame(s, h, nil)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.Run(ctx, orch); err != nil {
		t.Errorf("Expected clean quit, got %v", err)
	}
}
