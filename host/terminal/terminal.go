// Package terminal hosts the game in a tcell screen
// Two framebuffer rows share one cell through the upper half block glyph
package terminal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/render"
)

// upperHalf paints the top pixel in foreground and the bottom pixel in background
const upperHalf = '▀'

// pollInterval is how often Run offers a frame to the orchestrator
const pollInterval = 4 * time.Millisecond

// CellRows is the number of terminal rows the framebuffer occupies
const CellRows = constant.ScreenHeight / 2

// Host renders tile handoffs into a tcell screen and turns key presses into logical inputs
type Host struct {
	*engine.InputRegistry

	screen tcell.Screen
	canvas *render.TileCanvas
	frame  *core.PixelBuffer

	mu     sync.Mutex
	status func() []string
}

// New wraps an initialized screen
func New(screen tcell.Screen) *Host {
	return &Host{
		InputRegistry: engine.NewInputRegistry(),
		screen:        screen,
		canvas:        render.NewTileCanvas(),
		frame:         core.NewPixelBuffer(),
	}
}

// SetLegend validates and stores tile bitmaps
func (h *Host) SetLegend(entries ...render.LegendEntry) error {
	if err := engine.ValidateLegend(entries); err != nil {
		return err
	}
	return h.canvas.SetLegend(entries...)
}

// SetMap stores the tile arrangement
func (h *Host) SetMap(grid string) error {
	return h.canvas.SetMap(grid)
}

// SetStatus installs a provider of lines drawn under the playfield
func (h *Host) SetStatus(fn func() []string) {
	h.mu.Lock()
	h.status = fn
	h.mu.Unlock()
}

// Draw composes the latest handoff and shows it, returns false when nothing changed
func (h *Host) Draw() bool {
	if !h.canvas.Compose(h.frame) {
		return false
	}

	w, ht := h.screen.Size()
	for cy := 0; cy < CellRows && cy < ht; cy++ {
		for x := 0; x < constant.ScreenWidth && x < w; x++ {
			top := render.RGBOf(h.frame.Pixel(x, cy*2))
			bottom := render.RGBOf(h.frame.Pixel(x, cy*2+1))
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			h.screen.SetContent(x, cy, upperHalf, nil, style)
		}
	}

	h.mu.Lock()
	statusFn := h.status
	h.mu.Unlock()
	if statusFn != nil {
		h.drawStatus(statusFn(), w, ht)
	}

	h.screen.Show()
	return true
}

func (h *Host) drawStatus(lines []string, w, ht int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, line := range lines {
		y := CellRows + i
		if y >= ht {
			return
		}
		x := 0
		for _, r := range line {
			if x >= w {
				break
			}
			h.screen.SetContent(x, y, r, nil, style)
			x++
		}
		for ; x < w && x < constant.ScreenWidth; x++ {
			h.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// HandleEvent processes one screen event, returns true when the user asked to quit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
			return true
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return true
		}
		if key, ok := LogicalKey(ev); ok {
			h.Dispatch(key)
		}
	case *tcell.EventResize:
		h.screen.Clear()
		h.screen.Sync()
	}
	return false
}

// LogicalKey maps a key press onto the logical key set
func LogicalKey(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return constant.KeyFire, true
	case tcell.KeyDown:
		return constant.KeyStop, true
	case tcell.KeyLeft:
		return constant.KeyLeft, true
	case tcell.KeyRight:
		return constant.KeyRight, true
	case tcell.KeyEnter:
		return constant.KeyStart, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return constant.KeyFire, true
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		key := string(r)
		if engine.ValidateKey(key) == nil {
			return key, true
		}
	}
	return "", false
}

// Run drives the orchestrator until ctx is done or the user quits
func (h *Host) Run(ctx context.Context, orch *engine.Orchestrator) error {
	if orch == nil {
		return fmt.Errorf("terminal: nil orchestrator")
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if h.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			if orch.Frame(now) {
				h.Draw()
			}
		}
	}
}
