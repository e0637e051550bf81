package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Heliodex/sprig/app"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/host/window"
	"github.com/Heliodex/sprig/store"
	"github.com/Heliodex/sprig/system"
)

var (
	seedFlag   = flag.Int64("seed", 0, "RNG seed, 0 picks one from the clock")
	fpsFlag    = flag.Int("fps", 0, "Frame rate cap, 0 keeps the configured value")
	scaleFlag  = flag.Int("scale", 4, "Window scale factor")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	scoresFlag = flag.String("scores", app.DefaultScoresPath(), "High score file")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)

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

	game := window.New()
	session := engine.NewSession(cfg)
	if err := engine.BindInputs(game, session); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind inputs: %v\n", err)
		os.Exit(1)
	}
	app.RecordScores(session, scores)

	orch := system.NewGame(session, game, nil)
	orch.SetEventHandler(app.EventHandler(player))
	game.Attach(orch)

	if err := window.Run(game, *scaleFlag); err != nil {
		fmt.Fprintf(os.Stderr, "shooter-window: %v\n", err)
		os.Exit(1)
	}
}
