package arrayqueue

import (
	"iter"

	"github.com/i5heu/GoCourseLab/pkg/container"
)

// ArrayQueue is a fixed-capacity FIFO queue over an owned ring buffer.
// head and tail are monotonic positions; tail-head is the number of live
// elements and a position maps to a slot with pos % capacity.
type ArrayQueue[T any] struct {
	buffer   []T
	capacity uint64
	head     uint64
	tail     uint64
}

// New creates an ArrayQueue holding at most capacity elements.
// Unlike a power-of-two ring the capacity is kept exactly as requested.
func New[T any](capacity int) (*ArrayQueue[T], error) {
	if capacity < 1 {
		return nil, container.ErrInvalidCapacity
	}
	return &ArrayQueue[T]{
		buffer:   make([]T, capacity),
		capacity: uint64(capacity),
	}, nil
}

// Enqueue appends val at the back, or returns container.ErrFull without
// touching the queue.
func (q *ArrayQueue[T]) Enqueue(val T) error {
	if q.tail-q.head == q.capacity {
		return container.ErrFull
	}
	q.buffer[q.tail%q.capacity] = val
	q.tail++
	return nil
}

// Dequeue removes and returns the front element.
func (q *ArrayQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.head == q.tail {
		return zero, container.ErrEmpty
	}
	slot := &q.buffer[q.head%q.capacity]
	ret := *slot
	*slot = zero
	q.head++
	return ret, nil
}

func (q *ArrayQueue[T]) Peek() (T, error) {
	if q.head == q.tail {
		var zero T
		return zero, container.ErrEmpty
	}
	return q.buffer[q.head%q.capacity], nil
}

// All yields from front to back.
func (q *ArrayQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := q.head; pos < q.tail; pos++ {
			if !yield(q.buffer[pos%q.capacity]) {
				return
			}
		}
	}
}

func (q *ArrayQueue[T]) Len() int { return int(q.tail - q.head) }

func (q *ArrayQueue[T]) Cap() int { return int(q.capacity) }

// FreeSlots returns how many more elements can be enqueued before the queue is full.
func (q *ArrayQueue[T]) FreeSlots() uint64 {
	return q.capacity - q.UsedSlots()
}

// UsedSlots returns how many elements are currently queued.
func (q *ArrayQueue[T]) UsedSlots() uint64 {
	return q.tail - q.head
}
