package events

import (
	"fmt"
	"reflect"
)

// InvalidArgumentError reports a registration against a type that does
// not implement the Event capability.
type InvalidArgumentError struct {
	Type reflect.Type
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("events: %v is not an Event type", e.Type)
}

// LogicError reports an EmitIfListening factory producing an event whose
// type does not match the declared one.
type LogicError struct {
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *LogicError) Error() string {
	return fmt.Sprintf("events: factory produced %v, expected %v", e.Actual, e.Expected)
}
