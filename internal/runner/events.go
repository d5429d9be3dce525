package runner

// EventKind discriminates supervisor events.
type EventKind int

const (
	// EventLine carries one ANSI-stripped output line.
	EventLine EventKind = iota
	// EventExit carries the final exit code. It is always the last event.
	EventExit
)

// Event is a typed message from the background goroutine to the display
// context.
type Event struct {
	Kind EventKind
	Line string
	Code int
}

// EventSink adapts the Observer callbacks to a channel so a single
// serialized consumer (a UI loop, the CLI) can drain supervisor output
// without sharing any other state with the background goroutine. The
// channel is closed after the exit event.
//
// The callbacks only push into the channel; keep draining (or size the
// buffer for the expected output volume) so the supervisor's read loop
// is never held up by a slow consumer.
type EventSink struct {
	events chan Event
}

// NewEventSink creates a sink with the given channel buffer. A buffer of
// zero makes every delivery rendezvous with the consumer.
func NewEventSink(buffer int) *EventSink {
	return &EventSink{events: make(chan Event, buffer)}
}

// OnLine implements Observer.
func (s *EventSink) OnLine(line string) {
	s.events <- Event{Kind: EventLine, Line: line}
}

// OnExit implements Observer. Closing the channel lets consumers range
// to completion.
func (s *EventSink) OnExit(code int) {
	s.events <- Event{Kind: EventExit, Code: code}
	close(s.events)
}

// Events returns the receive side of the sink.
func (s *EventSink) Events() <-chan Event {
	return s.events
}
