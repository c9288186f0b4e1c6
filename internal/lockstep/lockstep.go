// Package lockstep applies every user command to several containers of the
// same kind at once, so the array-backed and linked flavors can be compared
// step by step.
package lockstep

import (
	"errors"
	"fmt"
	"slices"

	"github.com/i5heu/GoCourseLab/pkg/container"
)

var ErrKindMismatch = errors.New("lockstep: containers must share the same kind")

// Member is one named container driven by a Group.
type Member[T any] struct {
	Name      string
	Container container.Container[T]
}

// Outcome is the result of one command on one member.
type Outcome[T any] struct {
	Name  string
	Value T
	Err   error
}

// View is a snapshot of one member's contents in display order.
type View[T any] struct {
	Name   string
	Values []T
}

// Group drives one or more members in lockstep.
type Group[T comparable] struct {
	kind    container.Kind
	members []Member[T]
}

func New[T comparable](members ...Member[T]) (*Group[T], error) {
	if len(members) == 0 {
		return nil, errors.New("lockstep: no containers")
	}
	kind := members[0].Container.Kind()
	for _, m := range members[1:] {
		if m.Container.Kind() != kind {
			return nil, fmt.Errorf("%w: %s is %s, want %s", ErrKindMismatch, m.Name, m.Container.Kind(), kind)
		}
	}
	return &Group[T]{kind: kind, members: members}, nil
}

func (p *Group[T]) Kind() container.Kind { return p.kind }

// Insert offers v to every member. A full member reports container.ErrFull
// in its Outcome while the others still receive the value.
func (p *Group[T]) Insert(v T) []Outcome[T] {
	out := make([]Outcome[T], 0, len(p.members))
	for _, m := range p.members {
		out = append(out, Outcome[T]{Name: m.Name, Value: v, Err: m.Container.Insert(v)})
	}
	return out
}

// Remove takes one element from every member.
func (p *Group[T]) Remove() []Outcome[T] {
	out := make([]Outcome[T], 0, len(p.members))
	for _, m := range p.members {
		v, err := m.Container.Remove()
		out = append(out, Outcome[T]{Name: m.Name, Value: v, Err: err})
	}
	return out
}

// Snapshot returns the contents of every member without mutating them.
func (p *Group[T]) Snapshot() []View[T] {
	out := make([]View[T], 0, len(p.members))
	for _, m := range p.members {
		out = append(out, View[T]{Name: m.Name, Values: slices.Collect(m.Container.All())})
	}
	return out
}

// Diverged reports whether any two members hold different contents.
// A bounded member that rejected an insert makes the group diverge.
func (p *Group[T]) Diverged() bool {
	views := p.Snapshot()
	for _, v := range views[1:] {
		if !slices.Equal(views[0].Values, v.Values) {
			return true
		}
	}
	return false
}
