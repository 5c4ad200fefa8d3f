package events

import "reflect"

// Event is the capability every value dispatched through a Manager
// implements. Concrete event types add the marker method:
//
//	type UserCreated struct{ Name string }
//
//	func (UserCreated) ImplementsEvent() {}
//
// The event's reflect.Type is its routing identifier: dispatch is an exact
// type match, so T and *T are distinct event types.
type Event interface {
	ImplementsEvent()
}

// Cancellable is an optional capability of an event. When a listener
// cancels the event during dispatch, the remaining listeners for that
// emission are skipped.
type Cancellable interface {
	Event

	// Cancel marks the event as cancelled. Idempotent.
	Cancel()

	// IsCancelled reports whether Cancel has been called.
	IsCancelled() bool
}

// Cancellation is an embeddable Cancellable implementation. Its methods
// use a pointer receiver, so events embedding it must be dispatched as
// pointers for cancellation to take effect.
type Cancellation struct {
	cancelled bool
}

// Cancel marks the event as cancelled.
func (c *Cancellation) Cancel() {
	c.cancelled = true
}

// IsCancelled reports whether the event has been cancelled.
func (c *Cancellation) IsCancelled() bool {
	return c.cancelled
}

// eventInterface is the reflect.Type of the Event capability, used to
// validate runtime-supplied event types at registration time.
var eventInterface = reflect.TypeOf((*Event)(nil)).Elem()

// TypeOf returns the routing identifier for the event type E.
func TypeOf[E Event]() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

// typeKey returns the registry key for an event type.
func typeKey(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
