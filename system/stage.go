package system

import (
	"log"

	"github.com/Heliodex/sprig/constant"
	"github.com/Heliodex/sprig/engine"
	"github.com/Heliodex/sprig/parameter"
)

// stageRecolour is the hostile palette substitution applied on entering a stage
var stageRecolour = map[int][2]byte{
	2: {constant.GlyphRed, constant.GlyphOrange},
	3: {constant.GlyphOrange, constant.GlyphPink},
	5: {constant.GlyphPink, constant.GlyphPurple},
}

// StageFor returns the stage a score has reached
func StageFor(score int) int {
	stage := parameter.FirstStage
	for i, threshold := range parameter.StageThresholds {
		if score >= threshold {
			stage = parameter.FirstStage + i + 1
		}
	}
	return stage
}

// StageSystem escalates the stage one way as score crosses thresholds
type StageSystem struct{}

// NewStageSystem creates the stage tracker
func NewStageSystem() *StageSystem {
	return &StageSystem{}
}

func (sys *StageSystem) Priority() int {
	return parameter.PriorityStage
}

// Update applies every stage between the current one and the one the score reached
func (sys *StageSystem) Update(s *engine.Session) {
	if s.State != engine.StatePlaying {
		return
	}

	target := StageFor(s.Score)
	for s.Stage < target && s.Stage < parameter.FinalStage {
		s.Stage++
		if sub, ok := stageRecolour[s.Stage]; ok {
			if err := s.Palette.Substitute(sub[0], sub[1]); err != nil {
				log.Printf("stage %d: %v", s.Stage, err)
			}
		}
		log.Printf("session %s: stage %d at score %d", s.ID, s.Stage, s.Score)
		s.Emit(engine.EventStageUp, s.Stage)
	}
}
