package audio

// Cue tunes in tune text, parsed once at startup
var cueTexts = map[Cue]string{
	CueShot:      "40: C6-40 + G5/40,",
	CueExplosion: "60: C3/60 + D#3-60,\n60: A2/60,\n80: F2/80,",
	CueGameOver:  "150: E4^150,\n150: D#4^150,\n150: D4^150,\n400: C#4~400 + C#3-400,",
	CueStart:     "90: C5~90,\n90: E5~90,\n90: G5~90,\n180: C6~180 + C5^180,",
	CueStageUp:   "80: G5-80,\n80: B5-80,\n160: D6-160,",
}

// DefaultCues parses the built-in cue tunes
func DefaultCues() map[Cue]Tune {
	cues := make(map[Cue]Tune, cueCount)
	for c, text := range cueTexts {
		t, err := ParseTune(text)
		if err != nil {
			panic(err)
		}
		cues[c] = t
	}
	return cues
}
