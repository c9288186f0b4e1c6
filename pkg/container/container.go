// Package container holds the shared contract of the stack and queue
// implementations: the method sets they satisfy, the errors they report and a
// direction-agnostic view used by drivers that treat every container alike.
package container

import (
	"errors"
	"iter"
)

var (
	// ErrFull is returned when inserting into a bounded container that holds
	// Cap() elements. The container is left unchanged.
	ErrFull = errors.New("container: full")

	// ErrEmpty is returned when removing from or peeking into an empty
	// container. The zero value of the element type accompanies it.
	ErrEmpty = errors.New("container: empty")

	// ErrInvalidCapacity is returned by bounded constructors for capacity < 1.
	ErrInvalidCapacity = errors.New("container: capacity must be >= 1")
)

// Stack is the LIFO method set shared by arraystack and linkedstack.
type Stack[T any] interface {
	// Push places v on top. Bounded stacks return ErrFull at capacity.
	Push(v T) error

	// Pop removes and returns the top element, or ErrEmpty.
	Pop() (T, error)

	// Peek returns the top element without removing it, or ErrEmpty.
	Peek() (T, error)

	// All yields the elements from top to bottom without mutating the stack.
	All() iter.Seq[T]

	// Len returns the number of live elements.
	Len() int
}

// Queue is the FIFO method set shared by arrayqueue and linkedqueue.
type Queue[T any] interface {
	// Enqueue appends v at the back. Bounded queues return ErrFull at capacity.
	Enqueue(v T) error

	// Dequeue removes and returns the front element, or ErrEmpty.
	Dequeue() (T, error)

	// Peek returns the front element without removing it, or ErrEmpty.
	Peek() (T, error)

	// All yields the elements from front to back without mutating the queue.
	All() iter.Seq[T]

	// Len returns the number of live elements.
	Len() int
}

// Bounded is implemented by the array-backed containers.
type Bounded interface {
	Cap() int
	FreeSlots() uint64
	UsedSlots() uint64
}

// Kind tells which end a Container removes from.
type Kind uint8

const (
	LIFO Kind = iota
	FIFO
)

func (k Kind) String() string {
	switch k {
	case LIFO:
		return "LIFO"
	case FIFO:
		return "FIFO"
	default:
		return "unknown"
	}
}

// Container is the direction-agnostic view of a Stack or a Queue.
type Container[T any] interface {
	Insert(v T) error
	Remove() (T, error)
	All() iter.Seq[T]
	Len() int
	Kind() Kind
}

type stackView[T any] struct{ Stack[T] }

func (s stackView[T]) Insert(v T) error   { return s.Push(v) }
func (s stackView[T]) Remove() (T, error) { return s.Pop() }
func (s stackView[T]) Kind() Kind         { return LIFO }

type queueView[T any] struct{ Queue[T] }

func (q queueView[T]) Insert(v T) error   { return q.Enqueue(v) }
func (q queueView[T]) Remove() (T, error) { return q.Dequeue() }
func (q queueView[T]) Kind() Kind         { return FIFO }

// FromStack adapts s to the Container view.
func FromStack[T any](s Stack[T]) Container[T] { return stackView[T]{s} }

// FromQueue adapts q to the Container view.
func FromQueue[T any](q Queue[T]) Container[T] { return queueView[T]{q} }

// Capacity reports the bound of c and whether it has one.
func Capacity[T any](c Container[T]) (int, bool) {
	var inner any
	switch v := c.(type) {
	case stackView[T]:
		inner = v.Stack
	case queueView[T]:
		inner = v.Queue
	default:
		inner = c
	}
	if b, ok := inner.(Bounded); ok {
		return b.Cap(), true
	}
	return 0, false
}
