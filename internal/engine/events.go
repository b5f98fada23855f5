package engine

// EventKind names the mutation that produced an Event
type EventKind string

const (
	CategoryAdded      EventKind = "category_added"
	CategoryMerged     EventKind = "category_merged"
	CategoryDeleted    EventKind = "category_deleted"
	TrackerDeleted     EventKind = "tracker_deleted"
	CompletionInserted EventKind = "completion_inserted"
	CompletionRemoved  EventKind = "completion_removed"
)

// Event is delivered to subscribers after a mutation has been persisted
type Event struct {
	Kind          EventKind
	CategoryTitle string
	TrackerID     string
	Day           string
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn for change events. Subscribers are called in
// registration order, once per successful mutation. The returned func
// removes the subscription and is safe to call more than once.
func (e *Engine) Subscribe(fn func(Event)) (unsubscribe func()) {
	e.nextSubID++
	id := e.nextSubID
	e.subscribers = append(e.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range e.subscribers {
			if s.id == id {
				e.subscribers = append(e.subscribers[:i:i], e.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) publish(ev Event) {
	// Snapshot so a subscriber that unsubscribes during delivery does not skip its neighbours
	subs := append([]subscriber(nil), e.subscribers...)
	for _, s := range subs {
		s.fn(ev)
	}
}
