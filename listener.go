package events

import (
	"reflect"
	"sync/atomic"
)

// Listener wraps a registered callback together with its event type, a
// once flag and an identity tag. The Manager owns the registration; a
// Listener holds no reference back to it.
type Listener struct {
	typ      reflect.Type
	key      string
	invoke   func(Event) error
	callback any
	tag      reflect.Value
	once     bool
	fired    atomic.Bool
}

// NewListener builds a listener for the event type E around fn. The Event
// bound on E is the registration-time type check; it cannot fail here.
func NewListener[E Event](fn func(E) error, once bool) *Listener {
	typ := TypeOf[E]()
	return &Listener{
		typ: typ,
		key: typeKey(typ),
		invoke: func(e Event) error {
			ev, ok := e.(E)
			if !ok {
				return nil
			}
			return fn(ev)
		},
		callback: fn,
		tag:      reflect.ValueOf(fn),
		once:     once,
	}
}

// NewListenerOf builds a listener for a runtime-supplied event type.
// Returns an InvalidArgumentError if typ does not implement Event.
func NewListenerOf(typ reflect.Type, fn func(Event) error, once bool) (*Listener, error) {
	if typ == nil || !typ.Implements(eventInterface) {
		return nil, &InvalidArgumentError{Type: typ}
	}
	return &Listener{
		typ:      typ,
		key:      typeKey(typ),
		invoke:   fn,
		callback: fn,
		tag:      reflect.ValueOf(fn),
		once:     once,
	}, nil
}

// Type returns the event type the listener is registered for.
func (l *Listener) Type() reflect.Type {
	return l.typ
}

// Once reports whether the listener fires at most once.
func (l *Listener) Once() bool {
	return l.once
}

// Callback returns the original callback the listener wraps.
func (l *Listener) Callback() any {
	return l.callback
}

// Invoke calls the wrapped callback with e. Events of a different type
// than the listener's are skipped.
func (l *Listener) Invoke(e Event) error {
	return l.invoke(e)
}

// IsListening reports whether the listener can still fire. It becomes
// false once a once-listener has fired.
func (l *Listener) IsListening() bool {
	return !l.once || !l.fired.Load()
}

// claim reserves a once-listener for delivery. It reports whether the
// caller should invoke the listener.
func (l *Listener) claim() bool {
	if !l.once {
		return true
	}
	return l.fired.CompareAndSwap(false, true)
}
