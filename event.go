package libevents

type (
	// Event names an event whose payload is of type P. Declaring the events of
	// a system as package-level Event values gives the closed, compile-time
	// checked schema handlers and emitters agree on.
	Event[P any] struct {
		name string
	}

	// None is the payload type of events that carry no data.
	None struct{}

	// Signal is an event without payload.
	Signal = Event[None]
)

func NewEvent[P any](name string) Event[P] {
	return Event[P]{name: name}
}

func NewSignal(name string) Signal {
	return NewEvent[None](name)
}

func (e Event[P]) Name() string {
	return e.name
}

func (e Event[P]) String() string {
	return e.name
}
