package engine

// EventType identifies a gameplay occurrence hosts may react to (sound cues, logging)
type EventType int

const (
	// EventShot fires when a bullet is spawned
	EventShot EventType = iota
	// EventExplosion fires for every Explosion created by collision resolution
	EventExplosion
	// EventShipDestroyed fires once when the ship collision ends a playthrough
	EventShipDestroyed
	// EventStageUp fires when the stage advances; Value is the new stage
	EventStageUp
	// EventStateChange fires on every accepted transition; Value is the new State
	EventStateChange
)

func (t EventType) String() string {
	switch t {
	case EventShot:
		return "shot"
	case EventExplosion:
		return "explosion"
	case EventShipDestroyed:
		return "ship destroyed"
	case EventStageUp:
		return "stage up"
	case EventStateChange:
		return "state change"
	default:
		return "unknown"
	}
}

// Event is one queued occurrence, drained once per executed frame
type Event struct {
	Type  EventType
	Frame uint64
	Value int
}

// EventHandler consumes drained events on the frame goroutine
type EventHandler func(Event)
