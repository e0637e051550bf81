// Package window hosts the game in an ebiten window
package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/render"
)

// keyBindings maps physical keys onto logical keys, several keys may share one
var keyBindings = map[ebiten.Key]string{
	ebiten.KeyW:     constant.KeyFire,
	ebiten.KeyS:     constant.KeyStop,
	ebiten.KeyA:     constant.KeyLeft,
	ebiten.KeyD:     constant.KeyRight,
	ebiten.KeyI:     constant.KeyStart,
	ebiten.KeyJ:     constant.KeyMenu,
	ebiten.KeyK:     constant.KeyPause,
	ebiten.KeyL:     constant.KeyAux,
	ebiten.KeyUp:    constant.KeyFire,
	ebiten.KeySpace: constant.KeyFire,
	ebiten.KeyDown:  constant.KeyStop,
	ebiten.KeyLeft:  constant.KeyLeft,
	ebiten.KeyRight: constant.KeyRight,
	ebiten.KeyEnter: constant.KeyStart,
}

// Game is an ebiten.Game that forwards input to an orchestrator and shows its handoffs
type Game struct {
	*engine.InputRegistry

	orch   *engine.Orchestrator
	clock  engine.TimeProvider
	canvas *render.TileCanvas
	frame  *core.PixelBuffer
	pixels []byte
	screen *ebiten.Image
}

// New creates an unattached window host, call Attach before running
func New() *Game {
	return &Game{
		InputRegistry: engine.NewInputRegistry(),
		clock:         engine.NewMonotonicTimeProvider(),
		canvas:        render.NewTileCanvas(),
		frame:         core.NewPixelBuffer(),
		pixels:        make([]byte, 4*constant.ScreenWidth*constant.ScreenHeight),
	}
}

// Attach sets the orchestrator driven from Update
func (g *Game) Attach(orch *engine.Orchestrator) {
	g.orch = orch
}

// SetLegend validates and stores tile bitmaps
func (g *Game) SetLegend(entries ...render.LegendEntry) error {
	if err := engine.ValidateLegend(entries); err != nil {
		return err
	}
	return g.canvas.SetLegend(entries...)
}

// SetMap stores the tile arrangement
func (g *Game) SetMap(grid string) error {
	return g.canvas.SetMap(grid)
}

// Update dispatches fresh key presses and offers a frame to the orchestrator
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, logical := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.Dispatch(logical)
		}
	}
	if g.orch != nil {
		g.orch.Frame(g.clock.Now())
	}
	return nil
}

// Draw blits the composed framebuffer
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(constant.ScreenWidth, constant.ScreenHeight)
	}
	if g.canvas.Compose(g.frame) {
		render.FillRGBA(g.pixels, g.frame)
		g.screen.WritePixels(g.pixels)
	}
	screen.DrawImage(g.screen, nil)
}

// Layout fixes the logical resolution to the framebuffer size
func (g *Game) Layout(_, _ int) (int, int) {
	return constant.ScreenWidth, constant.ScreenHeight
}

// Run opens a window scaled by scale and blocks until it is closed
func Run(g *Game, scale int) error {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(constant.ScreenWidth*scale, constant.ScreenHeight*scale)
	ebiten.SetWindowTitle("shooter")
	ebiten.SetTPS(ebiten.DefaultTPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
