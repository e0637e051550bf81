package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 30 * time.Millisecond
)

// Streamer renders a tune into a finite stream at rate
func Streamer(t Tune, rate beep.SampleRate) beep.Streamer {
	beats := make([]beep.Streamer, 0, len(t))
	for _, b := range t {
		voices := []beep.Streamer{beep.Silence(rate.N(b.Duration))}
		for _, n := range b.Notes {
			osc := NewOscillator(n.Freq, n.Duration, n.Wave, rate)
			voices = append(voices, newVolume(NewEnvelope(osc, n.Duration, noteAttack, noteRelease, rate), 0.3))
		}
		// Notes may ring past the beat, the next beat starts on time
		beats = append(beats, beep.Take(rate.N(b.Duration), beep.Mix(voices...)))
	}
	return beep.Seq(beats...)
}

// Player owns the speaker and a mixer for overlapping cues
type Player struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	cues        map[Cue]Tune
	initialized bool
}

// NewPlayer creates a player with the default cue tunes
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		cues:  DefaultCues(),
	}
}

// Initialize opens the speaker; a disabled config is a no-op
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all sounds
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play mixes a tune in at the given volume
func (p *Player) Play(t Tune, volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}
	s := newVolume(Streamer(t, p.rate), volume*p.cfg.MasterVolume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// PlayCue plays the tune bound to a cue; silently ignored when audio is off
func (p *Player) PlayCue(c Cue) {
	p.mu.Lock()
	t, ok := p.cues[c]
	vol := p.cfg.CueVolumes[c]
	p.mu.Unlock()

	if ok {
		_ = p.Play(t, vol)
	}
}

// SetCue replaces the tune bound to a cue
func (p *Player) SetCue(c Cue, t Tune) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cues[c] = t
}
