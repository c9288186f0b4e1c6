package arraystack

import (
	"iter"

	"github.com/i5heu/GoCourseLab/pkg/container"
)

// ArrayStack is a fixed-capacity LIFO stack over an owned slice.
// top is the index of the current top element, -1 when empty.
type ArrayStack[T any] struct {
	buffer []T
	top    int
}

// New creates an ArrayStack holding at most capacity elements.
func New[T any](capacity int) (*ArrayStack[T], error) {
	if capacity < 1 {
		return nil, container.ErrInvalidCapacity
	}
	return &ArrayStack[T]{
		buffer: make([]T, capacity),
		top:    -1,
	}, nil
}

// Push places val on top, or returns container.ErrFull without touching the stack.
func (s *ArrayStack[T]) Push(val T) error {
	if s.top >= len(s.buffer)-1 {
		return container.ErrFull
	}
	s.top++
	s.buffer[s.top] = val
	return nil
}

// Pop removes and returns the top element.
func (s *ArrayStack[T]) Pop() (T, error) {
	var zero T
	if s.top < 0 {
		return zero, container.ErrEmpty
	}
	ret := s.buffer[s.top]
	s.buffer[s.top] = zero
	s.top--
	return ret, nil
}

func (s *ArrayStack[T]) Peek() (T, error) {
	if s.top < 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return s.buffer[s.top], nil
}

// All yields from top to bottom. Pushing or popping while ranging is not supported.
func (s *ArrayStack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.top; i >= 0; i-- {
			if !yield(s.buffer[i]) {
				return
			}
		}
	}
}

func (s *ArrayStack[T]) Len() int { return s.top + 1 }

func (s *ArrayStack[T]) Cap() int { return len(s.buffer) }

// FreeSlots returns how many more elements can be pushed before the stack is full.
func (s *ArrayStack[T]) FreeSlots() uint64 {
	return uint64(len(s.buffer) - s.Len())
}

// UsedSlots returns how many elements are currently stacked.
func (s *ArrayStack[T]) UsedSlots() uint64 {
	return uint64(s.Len())
}
