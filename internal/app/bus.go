package app

import "sync"

// EventKind discriminates bus events.
type EventKind int

const (
	EventFocus EventKind = iota
	EventBlur
	EventValidity
	EventSubmit
	EventSuccess
	EventError
	EventResize
	EventTheme
)

func (k EventKind) String() string {
	switch k {
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventValidity:
		return "validity"
	case EventSubmit:
		return "submit"
	case EventSuccess:
		return "success"
	case EventError:
		return "error"
	case EventResize:
		return "resize"
	case EventTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// Event is one notification routed through the bus: opaque-field events from
// the input layer, payment outcomes, and viewport changes.
type Event struct {
	Kind  EventKind
	Field string

	// EventValidity
	Valid            bool
	PotentiallyValid bool

	// EventSuccess / EventError
	TxID    string
	Message string

	// EventResize, device-independent pixels
	Width  float64
	Height float64

	// EventTheme
	Theme string
}

// Bus funnels asynchronously published events into the single-threaded frame
// loop. Publish may be called from any goroutine; Drain runs on the loop
// goroutine and dispatches each queued event to every subscriber before the
// frame advances, so no event is ever partially applied across a frame
// boundary.
type Bus struct {
	queue chan Event

	mu   sync.Mutex
	subs map[int]func(Event)
	next int
}

// NewBus creates a bus with the given queue depth.
func NewBus(depth int) *Bus {
	return &Bus{
		queue: make(chan Event, depth),
		subs:  make(map[int]func(Event)),
	}
}

// Subscribe registers fn for every drained event and returns its unsubscribe
// function. Subscribers run on the loop goroutine.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish enqueues an event. It reports false when the queue is full, in
// which case the event is dropped — the loop is stalled and stale input
// events are worthless by the time it recovers.
func (b *Bus) Publish(e Event) bool {
	select {
	case b.queue <- e:
		return true
	default:
		return false
	}
}

// Drain dispatches every queued event to all subscribers and returns how many
// events were processed.
func (b *Bus) Drain() int {
	n := 0
	for {
		select {
		case e := <-b.queue:
			b.mu.Lock()
			fns := make([]func(Event), 0, len(b.subs))
			for _, fn := range b.subs {
				fns = append(fns, fn)
			}
			b.mu.Unlock()
			for _, fn := range fns {
				fn(e)
			}
			n++
		default:
			return n
		}
	}
}
