package dom

// EventType identifies a class of user interaction delivered by the host.
type EventType int

const (
	EventClick EventType = iota
)

func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}

// Event carries the payload delivered to a fragment's handlers.
type Event struct {
	Type EventType
}

// Handler consumes a dispatched event.
type Handler func(Event)
