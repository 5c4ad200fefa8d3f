package events

import (
	"reflect"
	"slices"
)

// entry holds the ordered listeners registered for one event type.
// Insertion order defines dispatch order. Entries never outlive their
// last listener; the Manager deletes an entry the moment it empties.
type entry struct {
	typ       reflect.Type
	listeners []*Listener
}

func newEntry(typ reflect.Type) *entry {
	return &entry{
		typ:       typ,
		listeners: make([]*Listener, 0, 1),
	}
}

func (t *entry) count() int {
	return len(t.listeners)
}

func (t *entry) add(l *Listener, front bool) {
	if front {
		t.listeners = append([]*Listener{l}, t.listeners...)
		return
	}
	t.listeners = append(t.listeners, l)
}

// snapshot returns a copy of the listener list so dispatch can run
// outside the registry lock without skipped or duplicated deliveries.
func (t *entry) snapshot() []*Listener {
	return slices.Clone(t.listeners)
}

// removeByTag drops every listener whose identity tag equals tag and
// returns the number removed.
func (t *entry) removeByTag(tag reflect.Value) int {
	kept := make([]*Listener, 0, len(t.listeners))
	removed := 0
	for _, l := range t.listeners {
		if l.tag == tag {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	t.listeners = kept
	return removed
}

// compact drops listeners that are no longer listening (fired
// once-listeners marked during a dispatch loop).
func (t *entry) compact() {
	kept := make([]*Listener, 0, len(t.listeners))
	for _, l := range t.listeners {
		if l.IsListening() {
			kept = append(kept, l)
		}
	}
	t.listeners = kept
}
