package events

import (
	"reflect"

	"github.com/lockp111/go-cmap"
)

// Manager routes emitted events to the listeners registered for their
// type. Callers own their instance; there is no package-level default.
type Manager struct {
	registry cmap.ConcurrentMap[string, *entry]
	hooks    hookSet
}

// New returns an empty Manager.
func New() *Manager {
	return &Manager{
		registry: cmap.New[*entry](),
	}
}

// Listen registers fn for the runtime-supplied event type, appended after
// existing listeners. Returns an InvalidArgumentError if typ does not
// implement Event.
func (m *Manager) Listen(typ reflect.Type, fn func(Event) error) (*Listener, error) {
	l, err := NewListenerOf(typ, fn, false)
	if err != nil {
		return nil, err
	}
	m.insert(l, false)
	return l, nil
}

// ListenOnce is Listen for a listener that fires at most once.
func (m *Manager) ListenOnce(typ reflect.Type, fn func(Event) error) (*Listener, error) {
	l, err := NewListenerOf(typ, fn, true)
	if err != nil {
		return nil, err
	}
	m.insert(l, false)
	return l, nil
}

// Append registers a pre-built listener after existing listeners for its
// event type.
func (m *Manager) Append(l *Listener) *Manager {
	m.insert(l, false)
	return m
}

// Prepend registers a pre-built listener ahead of existing listeners for
// its event type.
func (m *Manager) Prepend(l *Listener) *Manager {
	m.insert(l, true)
	return m
}

// Emit dispatches e to every listener registered for its exact type, in
// registration order. With no listeners it is a no-op. Delivery stops
// early when e is Cancellable and a listener cancels it, or when a
// listener returns an error; the error propagates unwrapped. Fired
// once-listeners are removed, and the dispatched hooks run unless a
// listener errored.
func (m *Manager) Emit(e Event) error {
	if e == nil {
		return nil
	}

	var snapshot []*Listener
	key := typeKey(reflect.TypeOf(e))
	m.registry.GetCb(key, func(t *entry, exists bool) {
		if !exists {
			return
		}
		snapshot = t.snapshot()
	})
	if len(snapshot) == 0 {
		return nil
	}

	var (
		err              error
		firedOnce        bool
		cancellable, can = e.(Cancellable)
	)
	for _, l := range snapshot {
		if !l.claim() {
			continue
		}
		firedOnce = firedOnce || l.once
		if err = l.Invoke(e); err != nil {
			break
		}
		if can && cancellable.IsCancelled() {
			break
		}
	}

	if firedOnce {
		m.compact(key)
	}
	if err != nil {
		return err
	}
	m.hooks.notifyDispatched(e)
	return nil
}

// EmitIfListening dispatches the event produced by factory, but only when
// listeners are registered for typ; otherwise the factory is never
// invoked. A factory event whose type is neither typ nor an
// implementation of it (when typ is an interface) yields a LogicError.
func (m *Manager) EmitIfListening(typ reflect.Type, factory func() Event) error {
	if !m.HasListeners(typ) {
		return nil
	}
	e := factory()
	et := reflect.TypeOf(e)
	if et != typ && !(typ.Kind() == reflect.Interface && et != nil && et.Implements(typ)) {
		return &LogicError{Expected: typ, Actual: et}
	}
	return m.Emit(e)
}

// HasListeners reports whether at least one listener is registered for
// the exact event type typ.
func (m *Manager) HasListeners(typ reflect.Type) bool {
	if typ == nil {
		return false
	}
	t, ok := m.registry.Get(typeKey(typ))
	return ok && t.count() > 0
}

// ListenerCount returns the number of listeners registered for typ.
func (m *Manager) ListenerCount(typ reflect.Type) int {
	if typ == nil {
		return 0
	}
	t, ok := m.registry.Get(typeKey(typ))
	if !ok {
		return 0
	}
	return t.count()
}

// TotalListeners returns the number of listeners across all event types.
func (m *Manager) TotalListeners() int {
	total := 0
	m.registry.IterCb(func(_ string, t *entry) {
		total += t.count()
	})
	return total
}

// EventTypeCount returns the number of event types with listeners.
func (m *Manager) EventTypeCount() int {
	return m.registry.Count()
}

// RemoveListener removes every listener whose callback is identical to
// target across all event types and returns the number removed. The
// target is either a *Listener or the callback it was built from;
// identity is function-value identity, not deep equality. On-remove
// hooks fire once per affected event type.
func (m *Manager) RemoveListener(target any) int {
	if target == nil {
		return 0
	}
	tag := reflect.ValueOf(target)
	if l, isListener := target.(*Listener); isListener {
		tag = l.tag
	}

	keys := make([]string, 0, m.registry.Count())
	m.registry.IterCb(func(key string, _ *entry) {
		keys = append(keys, key)
	})

	total := 0
	affected := make([]reflect.Type, 0, 1)
	for _, key := range keys {
		var (
			removed int
			typ     reflect.Type
		)
		m.registry.RemoveCb(key, func(t *entry, exists bool) bool {
			if !exists {
				return false
			}
			removed = t.removeByTag(tag)
			typ = t.typ
			return t.count() == 0
		})
		if removed > 0 {
			total += removed
			affected = append(affected, typ)
		}
	}

	for _, typ := range affected {
		m.hooks.notifyRemoved(typ)
	}
	return total
}

// RemoveAllListeners drops the whole registry entry for typ and reports
// whether one existed. On-remove hooks fire only when it did.
func (m *Manager) RemoveAllListeners(typ reflect.Type) bool {
	if typ == nil {
		return false
	}
	existed := false
	m.registry.RemoveCb(typeKey(typ), func(_ *entry, exists bool) bool {
		existed = exists
		return exists
	})
	if existed {
		m.hooks.notifyRemoved(typ)
	}
	return existed
}

// Reset drops every registration, firing on-remove hooks per event type.
func (m *Manager) Reset() *Manager {
	old := m.registry
	m.registry = cmap.New[*entry]()

	types := make([]reflect.Type, 0, old.Count())
	old.IterCb(func(_ string, t *entry) {
		types = append(types, t.typ)
	})
	for _, typ := range types {
		m.hooks.notifyRemoved(typ)
	}
	return m
}

// OnListenerAdded registers a hook invoked after each listener
// registration, in hook registration order.
func (m *Manager) OnListenerAdded(h AddedHook) *Manager {
	m.hooks.addAdded(h)
	return m
}

// OnListenerRemoved registers a hook invoked after listeners are removed,
// once per affected event type.
func (m *Manager) OnListenerRemoved(h RemovedHook) *Manager {
	m.hooks.addRemoved(h)
	return m
}

// OnDispatched registers a hook invoked after each completed emission,
// including emissions short-circuited by cancellation.
func (m *Manager) OnDispatched(h DispatchedHook) *Manager {
	m.hooks.addDispatched(h)
	return m
}

func (m *Manager) insert(l *Listener, front bool) {
	m.registry.Upsert(l.key, func(old *entry, exists bool) *entry {
		if !exists {
			old = newEntry(l.typ)
		}
		old.add(l, front)
		return old
	})
	m.hooks.notifyAdded(l.typ, l)
}

// compact rebuilds the entry for key without fired once-listeners,
// deleting it when it empties.
func (m *Manager) compact(key string) {
	m.registry.RemoveCb(key, func(t *entry, exists bool) bool {
		if !exists {
			return false
		}
		t.compact()
		return t.count() == 0
	})
}
