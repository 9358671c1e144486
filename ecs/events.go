package ecs

// EventKind identifies a world event.
type EventKind string

const (
	EventNewGame         EventKind = "new_game"
	EventJumped          EventKind = "jumped"
	EventDoubleJumped    EventKind = "double_jumped"
	EventLanded          EventKind = "landed"
	EventPickupCollected EventKind = "pickup_collected"
	EventPaused          EventKind = "paused"
	EventResumed         EventKind = "resumed"
	EventScrollStarted   EventKind = "scroll_started"
	EventGameOver        EventKind = "game_over"
	EventNameEntered     EventKind = "name_entered"
)

// Event is a world event payload.
type Event struct {
	Kind EventKind
	Data any
}

// EventQueue is a simple FIFO queue. Events from one tick stay readable until the
// next tick starts.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(kind EventKind, data any) {
	if q == nil {
		return
	}
	q.items = append(q.items, Event{Kind: kind, Data: data})
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek returns the queued events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
