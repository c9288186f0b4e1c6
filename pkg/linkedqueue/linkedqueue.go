package linkedqueue

import (
	"iter"

	"github.com/i5heu/GoCourseLab/pkg/container"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedQueue is an unbounded FIFO queue over a singly linked chain.
// It tracks both ends so Enqueue and Dequeue are O(1).
// Invariant: head == nil iff tail == nil iff the queue is empty.
type LinkedQueue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func New[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Enqueue always succeeds; the error is part of the shared Queue contract.
func (q *LinkedQueue[T]) Enqueue(val T) error {
	n := &node[T]{value: val}
	if q.tail == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
	return nil
}

// Dequeue unlinks the front node and returns its value.
func (q *LinkedQueue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, container.ErrEmpty
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.size--
	return n.value, nil
}

func (q *LinkedQueue[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T
		return zero, container.ErrEmpty
	}
	return q.head.value, nil
}

// All yields from front to back.
func (q *LinkedQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (q *LinkedQueue[T]) Len() int { return q.size }

// Clear drops the whole chain.
func (q *LinkedQueue[T]) Clear() {
	for q.head != nil {
		n := q.head
		q.head = n.next
		n.next = nil
	}
	q.tail = nil
	q.size = 0
}
