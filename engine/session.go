package engine

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/entity"
	"github.com/Heliodex/sprig/parameter"
)

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// MoveIntent is the held horizontal direction
type MoveIntent int8

const (
	MoveNone MoveIntent = iota
	MoveLeft
	MoveRight
)

// TransitionObserver is notified after every accepted state change
type TransitionObserver func(s *Session, from, to State)

// Session is the per-playthrough game state threaded through every system
// All fields are owned by the frame goroutine
type Session struct {
	ID    uuid.UUID
	State State
	Score int
	// Stage starts at parameter.FirstStage and only increases within a playthrough
	Stage int

	// BulletCooldown counts frames since the last shot
	BulletCooldown int
	// SpawnCounter counts frames since the last hostile spawn
	SpawnCounter int

	Move          MoveIntent
	FireRequested bool

	// Frame is the number of executed frames since creation
	Frame uint64

	// Palette recolours hostiles as the stage advances
	Palette *entity.Palette
	World   *World
	Rand    *rand.Rand
	Config  *Config

	// Overlay is the Intro in menu and the GameOverBanner in over; it is not part of World
	Overlay *entity.Entity

	inputs    []string
	events    []Event
	observers []TransitionObserver
}

// NewSession creates a session in the menu state
func NewSession(cfg *Config) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Session{
		ID:      uuid.New(),
		State:   StateMenu,
		Stage:   parameter.FirstStage,
		Palette: entity.NewPalette(),
		World:   NewWorld(),
		Rand:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Config:  cfg,
	}
	s.Overlay = entity.NewIntro(overlayPos())
	return s
}

func overlayPos() core.Vec2 {
	return core.Vec2{X: constant.ScreenWidth / 2, Y: constant.ScreenHeight / 2}
}

// Reset starts a fresh playthrough: new id, zeroed counters, empty world and a new ship
func (s *Session) Reset() {
	s.ID = uuid.New()
	s.Score = 0
	s.Stage = parameter.FirstStage
	s.BulletCooldown = 0
	s.SpawnCounter = 0
	s.Move = MoveNone
	s.FireRequested = false
	s.Palette.Reset()
	s.World.Clear()
	s.Overlay = nil
	s.World.Add(entity.NewShip(core.Vec2{X: parameter.ShipStartX, Y: parameter.ShipStartY}))
}

// Ship returns the live ship if there is one
func (s *Session) Ship() (*entity.Entity, bool) {
	return s.World.First(entity.KindShip)
}

// OnTransition registers an observer for state changes
func (s *Session) OnTransition(fn TransitionObserver) {
	s.observers = append(s.observers, fn)
}

// Transition moves to a new state, applying its entry effects
func (s *Session) Transition(to State) error {
	from := s.State
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	switch to {
	case StatePlaying:
		if from != StatePaused {
			s.Reset()
		}
	case StatePaused:
		s.Move = MoveNone
		s.FireRequested = false
	case StateOver:
		s.Move = MoveNone
		s.FireRequested = false
		s.Overlay = entity.NewGameOverBanner(overlayPos())
	case StateMenu:
		s.World.Clear()
		s.Move = MoveNone
		s.Overlay = entity.NewIntro(overlayPos())
	}

	s.State = to
	log.Printf("session %s: %s -> %s (score %d, stage %d)", s.ID, from, to, s.Score, s.Stage)
	s.Emit(EventStateChange, int(to))
	for _, fn := range s.observers {
		fn(s, from, to)
	}
	return nil
}

// AddScore awards points while playing; score is frozen in every other state
func (s *Session) AddScore(points int) {
	if s.State != StatePlaying {
		return
	}
	s.Score += points
}

// Emit queues an event for the current frame
func (s *Session) Emit(t EventType, value int) {
	s.events = append(s.events, Event{Type: t, Frame: s.Frame, Value: value})
}

// DrainEvents returns and clears queued events
func (s *Session) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// PushInput queues a logical key for the next executed frame
func (s *Session) PushInput(key string) {
	s.inputs = append(s.inputs, key)
}

// ApplyInputs interprets queued keys in arrival order
func (s *Session) ApplyInputs() {
	for _, key := range s.inputs {
		s.HandleInput(key)
	}
	s.inputs = s.inputs[:0]
}

// HandleInput interprets one logical key against the current state
// Keys that mean nothing in the current state are ignored
func (s *Session) HandleInput(key string) {
	switch key {
	case constant.KeyStart:
		if s.State != StatePlaying {
			_ = s.Transition(StatePlaying)
		}
	case constant.KeyPause:
		if s.State == StatePlaying {
			_ = s.Transition(StatePaused)
		}
	case constant.KeyMenu:
		if s.State == StatePaused || s.State == StateOver {
			_ = s.Transition(StateMenu)
		}
	case constant.KeyFire:
		if s.State == StatePlaying {
			s.FireRequested = true
		}
	case constant.KeyLeft:
		if s.State == StatePlaying {
			s.Move = MoveLeft
		}
	case constant.KeyRight:
		if s.State == StatePlaying {
			s.Move = MoveRight
		}
	case constant.KeyStop:
		if s.State == StatePlaying {
			s.Move = MoveNone
		}
	}
}
