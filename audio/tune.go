package audio

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Note is one voice inside a beat
type Note struct {
	Name     string
	Freq     float64
	Wave     WaveType
	Duration time.Duration
}

// Beat is one row of a tune; a beat without notes is a rest
type Beat struct {
	Duration time.Duration
	Notes    []Note
}

// Tune is a sequence of beats
type Tune []Beat

// Length returns the total play time
func (t Tune) Length() time.Duration {
	var d time.Duration
	for _, b := range t {
		d += b.Duration
	}
	return d
}

var instrumentWaves = map[byte]WaveType{
	'~': WaveSine,
	'^': WaveTriangle,
	'-': WaveSquare,
	'/': WaveSaw,
}

// InstrumentSymbols lists instruments in tracker order
const InstrumentSymbols = "~^-/"

var noteRe = regexp.MustCompile(`^([A-Ga-g])([#b]?)(-?\d)([~^\-/])(\d+)$`)

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// NoteFrequency returns the equal-tempered frequency of a note such as "A4" or "C#5"
func NoteFrequency(letter byte, accidental string, octave int) float64 {
	n := semitones[letter&^0x20]
	switch accidental {
	case "#":
		n++
	case "b":
		n--
	}
	// A4 = 440 Hz is MIDI 69
	midi := (octave+1)*12 + n
	return 440 * math.Pow(2, float64(midi-69)/12)
}

// ParseTune parses tune text: comma-separated beats, each "ms" or "ms: note + note"
// A note is NAME OCTAVE INSTRUMENT MS, for example C4~125
func ParseTune(text string) (Tune, error) {
	var tune Tune
	for i, raw := range strings.Split(text, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		head, body, hasNotes := strings.Cut(raw, ":")
		ms, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("%w: beat %d: bad duration %q", ErrBadTune, i, head)
		}
		beat := Beat{Duration: time.Duration(ms) * time.Millisecond}

		if hasNotes {
			for _, tok := range strings.Split(body, "+") {
				note, err := parseNote(strings.TrimSpace(tok))
				if err != nil {
					return nil, fmt.Errorf("beat %d: %w", i, err)
				}
				beat.Notes = append(beat.Notes, note)
			}
		}
		tune = append(tune, beat)
	}
	return tune, nil
}

func parseNote(tok string) (Note, error) {
	m := noteRe.FindStringSubmatch(tok)
	if m == nil {
		return Note{}, fmt.Errorf("%w: bad note %q", ErrBadTune, tok)
	}
	octave, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[5])
	return Note{
		Name:     m[1] + m[2] + m[3],
		Freq:     NoteFrequency(m[1][0], m[2], octave),
		Wave:     instrumentWaves[m[4][0]],
		Duration: time.Duration(ms) * time.Millisecond,
	}, nil
}

// String formats the tune back into tune text
func (t Tune) String() string {
	var sb strings.Builder
	for _, b := range t {
		sb.WriteString("\n")
		sb.WriteString(strconv.FormatInt(b.Duration.Milliseconds(), 10))
		for j, n := range b.Notes {
			if j == 0 {
				sb.WriteString(": ")
			} else {
				sb.WriteString(" + ")
			}
			fmt.Fprintf(&sb, "%s%c%d", n.Name, InstrumentSymbols[n.Wave], n.Duration.Milliseconds())
		}
		sb.WriteString(",")
	}
	return sb.String()
}
