package utils

import "github.com/oomph-ac/locomotion/oerror"

// CircularQueue is a fixed-capacity FIFO. Appending to a full queue drops the oldest item.
type CircularQueue[T any] struct {
	items      []T
	head, tail int
	size       int
}

// NewCircularQueue returns an empty queue holding up to capacity items.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Len returns the number of queued items.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Pop removes and returns the oldest item. ok is false if the queue is empty.
func (q *CircularQueue[T]) Pop() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	var zero T
	item, q.items[q.head] = q.items[q.head], zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return item, true
}

// Append queues item, overwriting the oldest one when the queue is full. It fails on a queue
// without capacity.
func (q *CircularQueue[T]) Append(item T) error {
	if len(q.items) == 0 {
		return oerror.New("circular queue: append on zero-capacity queue")
	}
	q.items[q.tail] = item
	q.tail = (q.tail + 1) % len(q.items)
	if q.size == len(q.items) {
		q.head = q.tail
		return nil
	}
	q.size++
	return nil
}
