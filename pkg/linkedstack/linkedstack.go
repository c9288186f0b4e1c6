package linkedstack

import (
	"iter"

	"github.com/i5heu/GoCourseLab/pkg/container"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedStack is an unbounded LIFO stack over a singly linked chain.
// top == nil iff the stack is empty.
type LinkedStack[T any] struct {
	top  *node[T]
	size int
}

func New[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// Push always succeeds; the error is part of the shared Stack contract.
func (s *LinkedStack[T]) Push(val T) error {
	s.top = &node[T]{value: val, next: s.top}
	s.size++
	return nil
}

// Pop unlinks the top node and returns its value.
func (s *LinkedStack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, container.ErrEmpty
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.size--
	return n.value, nil
}

func (s *LinkedStack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, container.ErrEmpty
	}
	return s.top.value, nil
}

// All yields from top to bottom.
func (s *LinkedStack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (s *LinkedStack[T]) Len() int { return s.size }

// Clear drops the whole chain.
func (s *LinkedStack[T]) Clear() {
	for s.top != nil {
		n := s.top
		s.top = n.next
		n.next = nil
	}
	s.size = 0
}
