// Package event carries the lifecycle events of a controller to the layers that react to them,
// such as camera effects and audio.
package event

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/locomotion/utils"
)

// Type identifies a lifecycle event.
type Type byte

const (
	// Landed fires when the character touches ground after having been airborne for longer
	// than the air register time.
	Landed Type = iota
	// Jumped fires when a buffered jump is performed.
	Jumped
	// Reparented fires when the body's parent transform changes. Consumers caching rotations
	// relative to the parent must resynchronise.
	Reparented
)

func (t Type) String() string {
	switch t {
	case Landed:
		return "landed"
	case Jumped:
		return "jumped"
	case Reparented:
		return "reparented"
	}
	return "unknown"
}

// Event is a single occurrence of a lifecycle event.
type Event struct {
	Type Type
	// Frame is the number of the tick the event happened in.
	Frame uint64
}

// Handler receives events.
type Handler func(Event)

// SubscriptionID identifies a Handler registered with a Bus.
type SubscriptionID uint64

// DefaultQueueSize is the queue capacity used by NewBus when a non-positive one is given.
const DefaultQueueSize = 32

// Bus queues events published during a tick and delivers them afterwards. It is not safe for
// concurrent use; it belongs to the goroutine that ticks its controller.
type Bus struct {
	subscribers *orderedmap.OrderedMap[SubscriptionID, Handler]
	nextID      SubscriptionID

	queue *utils.CircularQueue[Event]
}

// NewBus returns a bus queueing up to capacity undelivered events. Older events are dropped
// once the queue is full.
func NewBus(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}
	return &Bus{
		subscribers: orderedmap.NewOrderedMap[SubscriptionID, Handler](),
		queue:       utils.NewCircularQueue[Event](capacity),
	}
}

// Subscribe registers fn. Handlers are called in the order they subscribed.
func (b *Bus) Subscribe(fn Handler) SubscriptionID {
	b.nextID++
	b.subscribers.Set(b.nextID, fn)
	return b.nextID
}

// Unsubscribe removes a handler. It returns false if id was not subscribed.
func (b *Bus) Unsubscribe(id SubscriptionID) bool {
	return b.subscribers.Delete(id)
}

// Subscribers returns the number of registered handlers.
func (b *Bus) Subscribers() int {
	return b.subscribers.Len()
}

// Publish queues ev for delivery.
func (b *Bus) Publish(ev Event) {
	_ = b.queue.Append(ev)
}

// Pending returns the number of queued events.
func (b *Bus) Pending() int {
	return b.queue.Len()
}

// Flush delivers the queued events, oldest first, to every handler and empties the queue. When
// nobody is subscribed, events stay queued for Drain and Flush returns 0.
func (b *Bus) Flush() int {
	if b.subscribers.Len() == 0 {
		return 0
	}
	n := 0
	for ev, ok := b.queue.Pop(); ok; ev, ok = b.queue.Pop() {
		for el := b.subscribers.Front(); el != nil; el = el.Next() {
			el.Value(ev)
		}
		n++
	}
	return n
}

// Drain removes and returns the queued events, oldest first.
func (b *Bus) Drain() []Event {
	if b.queue.Len() == 0 {
		return nil
	}
	events := make([]Event, 0, b.queue.Len())
	for ev, ok := b.queue.Pop(); ok; ev, ok = b.queue.Pop() {
		events = append(events, ev)
	}
	return events
}
