// Package eventlog attaches structured logging to a Manager's lifecycle
// hooks. The core package stays log-free; this is an optional observer.
package eventlog

import (
	"reflect"

	"github.com/rs/zerolog"

	events "github.com/hollgate/go-events"
)

// Attach installs debug-level hooks on m that log listener registration,
// listener removal and completed dispatches.
func Attach(m *events.Manager, logger zerolog.Logger) {
	m.OnListenerAdded(func(typ reflect.Type, l *events.Listener) {
		logger.Debug().
			Str("event", typ.String()).
			Bool("once", l.Once()).
			Msg("listener added")
	}).OnListenerRemoved(func(typ reflect.Type) {
		logger.Debug().
			Str("event", typ.String()).
			Msg("listeners removed")
	}).OnDispatched(func(e events.Event) {
		logger.Debug().
			Str("event", reflect.TypeOf(e).String()).
			Msg("event dispatched")
	})
}
