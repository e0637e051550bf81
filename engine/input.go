package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Heliodex/sprig/constant"
)

var (
	ErrUnknownInput = errors.New("unknown input key")
)

// Input is the host's key binding surface
// Handlers fire at most once per physical key-down; the host deduplicates repeats
type Input interface {
	OnInput(key string, handler func()) error
}

// ValidateKey rejects keys outside the logical key set
func ValidateKey(key string) error {
	for _, k := range constant.ValidInputs {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("%w %q: expected one of %s", ErrUnknownInput, key, strings.Join(constant.ValidInputs, ", "))
}

// InputRegistry is a reusable Input implementation for hosts
type InputRegistry struct {
	mu       sync.RWMutex
	handlers map[string][]func()
}

// NewInputRegistry creates an empty registry
func NewInputRegistry() *InputRegistry {
	return &InputRegistry{handlers: make(map[string][]func())}
}

// OnInput binds a handler to a logical key
func (r *InputRegistry) OnInput(key string, handler func()) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[key] = append(r.handlers[key], handler)
	return nil
}

// Dispatch runs the handlers bound to key, returns false if none are bound
func (r *InputRegistry) Dispatch(key string) bool {
	r.mu.RLock()
	hs := r.handlers[key]
	r.mu.RUnlock()

	for _, h := range hs {
		h()
	}
	return len(hs) > 0
}

// BindInputs routes every logical key into the session's input queue
func BindInputs(in Input, s *Session) error {
	for _, key := range constant.ValidInputs {
		key := key
		if err := in.OnInput(key, func() { s.PushInput(key) }); err != nil {
			return fmt.Errorf("bind %q: %w", key, err)
		}
	}
	return nil
}
