package actionkit

import (
	"slices"
	"time"
)

// Event is a bare frame hook. Handlers run in registration order.
type Event struct {
	handlers []*handler
}

type handler struct {
	fn func(dt time.Duration)
}

// Register adds fn and returns a function that removes it. Removing a
// handler while the event is being triggered takes effect from the next
// trigger.
func (e *Event) Register(fn func(dt time.Duration)) (unregister func()) {
	h := &handler{fn: fn}
	e.handlers = append(e.handlers, h)
	return func() {
		e.handlers = slices.DeleteFunc(slices.Clone(e.handlers), func(x *handler) bool {
			return x == h
		})
	}
}

// Trigger calls every registered handler with dt.
func (e *Event) Trigger(dt time.Duration) {
	for _, h := range e.handlers {
		h.fn(dt)
	}
}

func (e *Event) Len() int {
	return len(e.handlers)
}
