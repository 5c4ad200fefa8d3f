package events

// Typed registration and dispatch helpers. Go methods cannot take type
// parameters, so the compile-time-checked API lives here as package
// functions operating on a Manager.

// On registers fn for the event type E, appended after existing
// listeners, and returns the listener for later removal.
func On[E Event](m *Manager, fn func(E) error) *Listener {
	l := NewListener(fn, false)
	m.insert(l, false)
	return l
}

// Once registers fn for the event type E, fired at most once.
func Once[E Event](m *Manager, fn func(E) error) *Listener {
	l := NewListener(fn, true)
	m.insert(l, false)
	return l
}

// EmitIfListening dispatches the event produced by factory when listeners
// are registered for E. Without listeners the factory is never invoked,
// so expensive payloads are only built when someone cares.
func EmitIfListening[E Event](m *Manager, factory func() E) error {
	if !m.HasListeners(TypeOf[E]()) {
		return nil
	}
	return m.Emit(factory())
}

// HasListeners reports whether at least one listener is registered for E.
func HasListeners[E Event](m *Manager) bool {
	return m.HasListeners(TypeOf[E]())
}
