package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/Heliodex/sprig/app"
	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/host/terminal"
	"github.com/Heliodex/sprig/status"
	"github.com/Heliodex/sprig/store"
	"github.com/Heliodex/sprig/system"
)

var (
	seedFlag   = flag.Int64("seed", 0, "RNG seed, 0 picks one from the clock")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/shooter.log")
	fpsFlag    = flag.Int("fps", 0, "Frame rate cap, 0 keeps the configured value")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	scoresFlag = flag.String("scores", app.DefaultScoresPath(), "High score file")
	statsFlag  = flag.Bool("stats", false, "Show frame metrics under the playfield")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "shooter needs an interactive terminal")
		os.Exit(1)
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < constant.ScreenWidth || h < terminal.CellRows) {
		fmt.Fprintf(os.Stderr, "Terminal is %dx%d, the playfield needs %dx%d and will be clipped\n",
			w, h, constant.ScreenWidth, terminal.CellRows)
	}

	switch *colorFlag {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}

	cfg := engine.LoadConfig()
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *fpsFlag > 0 {
		cfg.FrameRate = *fpsFlag
	}

	scores, err := store.Open(*scoresFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "High scores unavailable: %v\n", err)
		os.Exit(1)
	}

	player := app.OpenAudio(*muteFlag)
	defer player.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	host := terminal.New(screen)
	session := engine.NewSession(cfg)
	if err := engine.BindInputs(host, session); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to bind inputs: %v\n", err)
		os.Exit(1)
	}
	app.RecordScores(session, scores)

	reg := status.NewRegistry()
	orch := system.NewGame(session, host, reg)
	orch.SetEventHandler(app.EventHandler(player))

	var metrics func() []string
	if *statsFlag {
		metrics = reg.Lines
	}
	host.SetStatus(app.StatusLines(scores, metrics))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := host.Run(ctx, orch); err != nil && ctx.Err() == nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "shooter: %v\n", err)
		os.Exit(1)
	}
}
