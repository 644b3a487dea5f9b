package utils

import (
	"iter"

	"github.com/strafesim/strafesim/serror"
)

// CircularQueue is a bounded FIFO backed by a ring buffer. Appending to a full
// queue overwrites the oldest element.
type CircularQueue[T any] struct {
	items []T
	head  int
	tail  int
	size  int
}

func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Len returns the number of items currently queued.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Pop removes and returns the oldest element. The boolean ok is false if the
// queue is empty.
func (q *CircularQueue[T]) Pop() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	item = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return item, true
}

// Append appends an item, dropping the oldest element if the queue is full. It
// returns an error if the queue has zero capacity.
func (q *CircularQueue[T]) Append(item T) error {
	if len(q.items) == 0 {
		return serror.New("circularQueue: append on zero-capacity queue")
	}

	q.items[q.tail] = item
	if q.size == len(q.items) {
		// Buffer is full, drop the oldest element located at head.
		q.head = (q.head + 1) % len(q.items)
	} else {
		q.size++
	}
	q.tail = (q.tail + 1) % len(q.items)
	return nil
}

// Drain yields every queued item oldest-first, removing each as it is yielded.
func (q *CircularQueue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := q.Pop()
			if !ok {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}
