package engine

import "github.com/Heliodex/sprig/entity"

// World is the single owner of live entities
// Removal is deferred: removed entities stay in place until Compact so iteration order stays stable within a frame
type World struct {
	entities []*entity.Entity
	removed  map[*entity.Entity]struct{}
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		entities: make([]*entity.Entity, 0, 64),
		removed:  make(map[*entity.Entity]struct{}),
	}
}

// Add appends an entity; it joins iteration from the next call to All
func (w *World) Add(e *entity.Entity) {
	w.entities = append(w.entities, e)
}

// Remove marks an entity destroyed, returns false if it was already removed
func (w *World) Remove(e *entity.Entity) bool {
	if _, ok := w.removed[e]; ok {
		return false
	}
	w.removed[e] = struct{}{}
	return true
}

// IsRemoved reports whether an entity was removed since the last Compact
func (w *World) IsRemoved(e *entity.Entity) bool {
	_, ok := w.removed[e]
	return ok
}

// Compact drops removed entities, preserving the order of the rest
func (w *World) Compact() {
	if len(w.removed) == 0 {
		return
	}
	live := w.entities[:0]
	for _, e := range w.entities {
		if _, ok := w.removed[e]; !ok {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = live
	clear(w.removed)
}

// All returns the entity slice including entities removed this frame
// Callers must not retain it across frames
func (w *World) All() []*entity.Entity {
	return w.entities
}

// Live returns a copy of the entities not removed
func (w *World) Live() []*entity.Entity {
	out := make([]*entity.Entity, 0, len(w.entities))
	for _, e := range w.entities {
		if !w.IsRemoved(e) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities of a kind
func (w *World) Count(kind entity.Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == kind && !w.IsRemoved(e) {
			n++
		}
	}
	return n
}

// First returns the first live entity of a kind
func (w *World) First(kind entity.Kind) (*entity.Entity, bool) {
	for _, e := range w.entities {
		if e.Kind == kind && !w.IsRemoved(e) {
			return e, true
		}
	}
	return nil, false
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.entities) - len(w.removed)
}

// Clear drops every entity
func (w *World) Clear() {
	clear(w.entities)
	w.entities = w.entities[:0]
	clear(w.removed)
}
