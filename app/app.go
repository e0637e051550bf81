// Package app connects a session to the audio player and the high-score table
// Both front ends share it so a playthrough sounds and records the same everywhere
package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Heliodex/sprig/audio"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/store"
)

// CueFor maps a gameplay event to its sound cue
func CueFor(ev engine.Event) (audio.Cue, bool) {
	switch ev.Type {
	case engine.EventShot:
		return audio.CueShot, true
	case engine.EventExplosion:
		return audio.CueExplosion, true
	case engine.EventShipDestroyed:
		return audio.CueGameOver, true
	case engine.EventStageUp:
		return audio.CueStageUp, true
	case engine.EventStateChange:
		if engine.State(ev.Value) == engine.StatePlaying {
			return audio.CueStart, true
		}
	}
	return 0, false
}

// CuePlayer is the part of the audio player the event handler needs
type CuePlayer interface {
	PlayCue(c audio.Cue)
}

// EventHandler turns drained events into sound cues
func EventHandler(p CuePlayer) engine.EventHandler {
	return func(ev engine.Event) {
		if c, ok := CueFor(ev); ok {
			p.PlayCue(c)
		}
	}
}

// RecordScores adds every finished playthrough to the table and saves it
func RecordScores(s *engine.Session, tbl *store.Table) {
	s.OnTransition(func(s *engine.Session, from, to engine.State) {
		if to != engine.StateOver {
			return
		}
		rank, ok := tbl.Add(store.NewRecord(s.ID, s.Score, s.Stage, time.Now()))
		if !ok {
			return
		}
		log.Printf("session %s: score %d ranked %d", s.ID, s.Score, rank)
		if err := tbl.Save(); err != nil {
			log.Printf("save high scores: %v", err)
		}
	})
}

// StatusLines renders the best score and the metric registry for a host status area
func StatusLines(tbl *store.Table, lines func() []string) func() []string {
	return func() []string {
		var out []string
		if tbl != nil {
			if best, ok := tbl.Best(); ok {
				out = append(out, fmt.Sprintf("best: %d (stage %d)", best.Score, best.Stage))
			}
		}
		if lines != nil {
			out = append(out, lines()...)
		}
		return out
	}
}

// DefaultScoresPath returns the per-user high-score file location
func DefaultScoresPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "shooter-scores.msgpack"
	}
	return filepath.Join(dir, "shooter", "scores.msgpack")
}

// OpenAudio creates and initializes a player, falling back to silence on failure
func OpenAudio(mute bool) *audio.Player {
	cfg := audio.LoadAudioConfig()
	if mute {
		cfg.Enabled = false
	}
	p := audio.NewPlayer(cfg)
	if err := p.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	return p
}
