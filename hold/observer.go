package hold

import (
	"io"
	"strconv"
)

// Op identifies a lifecycle transition of a Value.
type Op uint8

const (
	// OpCreate is emitted by New.
	OpCreate Op = iota
	// OpClone is emitted by Clone on the new copy.
	OpClone
	// OpCopyAssign is emitted by CopyFrom on the destination.
	OpCopyAssign
	// OpMove is emitted by Move on the new owner.
	OpMove
	// OpMoveAssign is emitted by MoveFrom on the destination.
	OpMoveAssign
	// OpRelease is emitted by Release, before storage is reclaimed.
	OpRelease
)

// String returns a short human-readable name for the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "created"
	case OpClone:
		return "cloned"
	case OpCopyAssign:
		return "copy-assigned"
	case OpMove:
		return "move-constructed"
	case OpMoveAssign:
		return "move-assigned"
	case OpRelease:
		return "released"
	default:
		return "unknown"
	}
}

// Event is a snapshot of a Value taken at a lifecycle transition.
//
// Derived is meaningful only when Live is true; an empty value owns no
// storage, so it has no derived scalar to report.
type Event struct {
	// Instance identifies the Value the event belongs to.
	Instance string

	// Op is the transition that produced the event.
	Op Op

	// Value is the plain value at the time of the event.
	Value int

	// Derived is the owned derived scalar, valid only when Live.
	Derived int

	// Live reports whether the instance owned storage at the time of the event.
	Live bool
}

// String renders the event as one human-readable diagnostic line.
//
// The exact wording is not a contract; it is a console diagnostic, nothing
// parses it. It avoids fmt so observers stay cheap on hot paths.
func (e Event) String() string {
	s := "value " + e.Instance + " " + e.Op.String() +
		": value=" + strconv.Itoa(e.Value) + " derived="
	if e.Live {
		return s + strconv.Itoa(e.Derived)
	}
	return s + "empty"
}

// Observer receives lifecycle events from Values it is attached to.
//
// Observers are an external collaborator: they must not mutate the Value and
// are not part of the value-semantics contract. Implementations must not
// panic; events are emitted from paths that promise not to fail.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(e Event) { f(e) }

// NopObserver discards all events. It is the default for New.
type NopObserver struct{}

// Observe implements Observer.
func (NopObserver) Observe(Event) {}

// Recorder is an Observer that keeps every event in order of arrival.
//
// It exists for introspection in tests and demos: assert on what happened
// to a value without parsing console output.
type Recorder struct {
	events []Event
}

// Observe implements Observer.
func (r *Recorder) Observe(e Event) { r.events = append(r.events, e) }

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int { return len(r.events) }

// Last returns the most recent event, if any.
func (r *Recorder) Last() (Event, bool) {
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}

// Reset drops all recorded events.
func (r *Recorder) Reset() { r.events = r.events[:0] }

// writerObserver prints one line per event to an io.Writer.
type writerObserver struct {
	w io.Writer
}

// NewWriterObserver returns an Observer that writes one human-readable line
// per event to w. Write errors are ignored; the diagnostic stream is
// best-effort by design.
func NewWriterObserver(w io.Writer) Observer {
	return writerObserver{w: w}
}

// Observe implements Observer.
func (o writerObserver) Observe(e Event) {
	_, _ = io.WriteString(o.w, e.String()+"\n")
}
