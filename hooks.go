package events

import (
	"reflect"
	"slices"
	"sync"
)

// AddedHook observes listener registration.
type AddedHook func(typ reflect.Type, l *Listener)

// RemovedHook observes listener removal, once per affected event type.
type RemovedHook func(typ reflect.Type)

// DispatchedHook observes completed emissions.
type DispatchedHook func(e Event)

// hookSet holds the manager's lifecycle hooks. Hooks observe registry
// state but never influence it: they run in registration order, after the
// triggering mutation or dispatch has committed, and outside any registry
// lock.
type hookSet struct {
	mu         sync.RWMutex
	added      []AddedHook
	removed    []RemovedHook
	dispatched []DispatchedHook
}

func (h *hookSet) addAdded(hook AddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.added = append(h.added, hook)
}

func (h *hookSet) addRemoved(hook RemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removed = append(h.removed, hook)
}

func (h *hookSet) addDispatched(hook DispatchedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dispatched = append(h.dispatched, hook)
}

func (h *hookSet) notifyAdded(typ reflect.Type, l *Listener) {
	h.mu.RLock()
	hooks := slices.Clone(h.added)
	h.mu.RUnlock()
	for _, hook := range hooks {
		hook(typ, l)
	}
}

func (h *hookSet) notifyRemoved(typ reflect.Type) {
	h.mu.RLock()
	hooks := slices.Clone(h.removed)
	h.mu.RUnlock()
	for _, hook := range hooks {
		hook(typ)
	}
}

func (h *hookSet) notifyDispatched(e Event) {
	h.mu.RLock()
	hooks := slices.Clone(h.dispatched)
	h.mu.RUnlock()
	for _, hook := range hooks {
		hook(e)
	}
}
