package engine

// State is the top-level game mode
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Simulating reports whether entities move and collide in this state
func (s State) Simulating() bool {
	return s == StatePlaying || s == StateOver
}

// CanTransition checks if a state transition is valid
func CanTransition(from, to State) bool {
	validTransitions := map[State][]State{
		StateMenu:    {StatePlaying},
		StatePlaying: {StatePaused, StateOver},
		StatePaused:  {StatePlaying, StateMenu},
		StateOver:    {StatePlaying, StateMenu},
	}

	for _, state := range validTransitions[from] {
		if state == to {
			return true
		}
	}
	return false
}
