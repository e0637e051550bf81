package audio

import (
	"errors"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue identifies a sound played in response to a gameplay event
type Cue int

const (
	CueShot Cue = iota
	CueExplosion
	CueGameOver
	CueStart
	CueStageUp
	cueCount
)

// Sentinel errors
var (
	ErrBadTune        = errors.New("malformed tune")
	ErrNotInitialized = errors.New("audio output not initialized")
)
