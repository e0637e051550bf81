// Command tuneconv converts patterns of an Impulse Tracker module into tune text
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gotracker/playback/format/it"
	"github.com/gotracker/playback/format/it/layout"
	"github.com/gotracker/playback/format/it/volume"
	"github.com/gotracker/playback/index"
	"github.com/gotracker/playback/period"
	"github.com/gotracker/playback/player/feature"
	"github.com/gotracker/playback/song"

	"github.com/Heliodex/sprig/audio"
)

// beatsPerRow divides one tracker beat into rows
const beatsPerRow = 4

// maxChannel is the last channel read from every row
const maxChannel = 4

var (
	inFlag       = flag.String("in", "track.it", "Impulse Tracker module to read")
	outFlag      = flag.String("out", "output.txt", "Tune text file to write, - for stdout")
	patternsFlag = flag.String("patterns", "0", "Comma separated pattern indices to convert")
)

func main() {
	flag.Parse()

	patterns, err := parsePatterns(*patternsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuneconv: %v\n", err)
		os.Exit(2)
	}

	text, err := convert(*inFlag, patterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuneconv: %v\n", err)
		os.Exit(1)
	}

	// The output must load back through the game's own parser
	tune, err := audio.ParseTune(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuneconv: generated tune does not parse: %v\n", err)
		os.Exit(1)
	}

	if *outFlag == "-" {
		fmt.Print(text)
	} else if err := os.WriteFile(*outFlag, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "tuneconv: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%d beats, %s\n", len(tune), tune.Length())
}

func parsePatterns(s string) ([]index.Pattern, error) {
	var out []index.Pattern
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad pattern index %q", f)
		}
		out = append(out, index.Pattern(n))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no patterns given")
	}
	return out, nil
}

func convert(path string, patterns []index.Pattern) (string, error) {
	data, err := it.IT.Load(path, []feature.Feature{})
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}

	bpm := float64(data.GetInitialBPM())
	if bpm <= 0 {
		return "", fmt.Errorf("%s: initial tempo is %v", path, bpm)
	}
	ms := rowMillis(bpm)

	var sb strings.Builder
	for _, p := range patterns {
		pattern, err := data.GetPattern(p)
		if err != nil {
			return "", fmt.Errorf("pattern %d: %w", p, err)
		}

		for i := range index.Row(pattern.NumRows()) {
			row, ok := pattern.GetRow(i).(layout.Row[period.Linear])
			if !ok {
				return "", fmt.Errorf("pattern %d row %d: unsupported row layout", p, i)
			}

			var notes []string
			row.ForEach(func(c index.Channel, d song.ChannelData[volume.Volume]) (bool, error) {
				if tok, ok := formatNote(d.GetNote().String(), int(d.GetInstrument()), ms); ok {
					notes = append(notes, tok)
				}
				return c < maxChannel, nil
			})
			sb.WriteString(formatBeat(ms, notes))
		}
	}
	return sb.String(), nil
}

// rowMillis returns the duration of one pattern row at a tempo
func rowMillis(bpm float64) int {
	return int((60 / bpm) * 1000 / beatsPerRow)
}

// formatNote turns a tracker note such as "C#4" or "D-5" into a tune note
// Empty cells, note-offs and unknown instruments yield false
func formatNote(trackerNote string, instrument, ms int) (string, bool) {
	if trackerNote == "C-0" || instrument < 1 || instrument > len(audio.InstrumentSymbols) {
		return "", false
	}
	tok := fmt.Sprintf("%s%c%d", strings.ReplaceAll(trackerNote, "-", ""), audio.InstrumentSymbols[instrument-1], ms)
	if _, err := audio.ParseTune("0: " + tok); err != nil {
		return "", false
	}
	return tok, true
}

// formatBeat writes one row in tune text, a row without notes is a rest
func formatBeat(ms int, notes []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%d", ms)
	if len(notes) > 0 {
		sb.WriteString(": ")
		sb.WriteString(strings.Join(notes, " + "))
	}
	sb.WriteString(",")
	return sb.String()
}
