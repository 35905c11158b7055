package components

import "sync"

// EventDispatcher relays events to a single callback slot. Handles produced
// by Clone share the slot, so sending through any handle invokes the same
// callback. Send runs the callback synchronously under a mutex; there is no
// queue, no return value, and no cancellation.
type EventDispatcher[E any] struct {
	slot *dispatcherSlot[E]
}

type dispatcherSlot[E any] struct {
	mu       sync.Mutex
	callback func(E)
}

// NewEventDispatcher wraps callback in a dispatcher.
func NewEventDispatcher[E any](callback func(E)) *EventDispatcher[E] {
	return &EventDispatcher[E]{slot: &dispatcherSlot[E]{callback: callback}}
}

// Send invokes the held callback with event. Invocations are serialized so
// overlapping sends cannot corrupt shared closure state.
func (d *EventDispatcher[E]) Send(event E) {
	if d == nil || d.slot == nil {
		return
	}
	d.slot.mu.Lock()
	defer d.slot.mu.Unlock()
	if d.slot.callback != nil {
		d.slot.callback(event)
	}
}

// Clone returns a new handle sharing the same underlying callback slot.
func (d *EventDispatcher[E]) Clone() *EventDispatcher[E] {
	if d == nil {
		return nil
	}
	return &EventDispatcher[E]{slot: d.slot}
}

// ButtonEvent is the payload delivered to a button's callback.
type ButtonEvent int

const (
	// ButtonClicked reports a single click on the button surface.
	ButtonClicked ButtonEvent = iota
)

func (e ButtonEvent) String() string {
	switch e {
	case ButtonClicked:
		return "clicked"
	default:
		return "unknown"
	}
}
