package main

import (
	"errors"
	"slices"

	"github.com/i5heu/GoCourseLab/internal/lockstep"
	"github.com/i5heu/GoCourseLab/pkg/arrayqueue"
	"github.com/i5heu/GoCourseLab/pkg/arraystack"
	"github.com/i5heu/GoCourseLab/pkg/container"
	"github.com/i5heu/GoCourseLab/pkg/display"
	"github.com/i5heu/GoCourseLab/pkg/linkedqueue"
	"github.com/i5heu/GoCourseLab/pkg/linkedstack"
)

func newStacks(capacity int) (*lockstep.Group[int], error) {
	arr, err := arraystack.New[int](capacity)
	if err != nil {
		return nil, err
	}
	return lockstep.New(
		lockstep.Member[int]{Name: "array", Container: container.FromStack[int](arr)},
		lockstep.Member[int]{Name: "list", Container: container.FromStack[int](linkedstack.New[int]())},
	)
}

func newQueues(capacity int) (*lockstep.Group[int], error) {
	arr, err := arrayqueue.New[int](capacity)
	if err != nil {
		return nil, err
	}
	return lockstep.New(
		lockstep.Member[int]{Name: "array", Container: container.FromQueue[int](arr)},
		lockstep.Member[int]{Name: "list", Container: container.FromQueue[int](linkedqueue.New[int]())},
	)
}

// verbs name the two mutating operations of a container kind.
type verbs struct {
	title, insert, inserted, remove, removed string
}

var (
	stackVerbs = verbs{"STACK", "push", "pushed", "pop", "popped"}
	queueVerbs = verbs{"QUEUE", "enqueue", "enqueued", "dequeue", "dequeued"}
)

func runStack(a *app) error {
	p, err := newStacks(a.cfg.Capacity)
	if err != nil {
		return err
	}
	return containerMenu(a, p, stackVerbs)
}

func runQueue(a *app) error {
	p, err := newQueues(a.cfg.Capacity)
	if err != nil {
		return err
	}
	return containerMenu(a, p, queueVerbs)
}

// containerMenu is the shared loop of both container commands. Full and empty
// containers are reported and the loop continues.
func containerMenu(a *app, p *lockstep.Group[int], v verbs) error {
	a.out.Banner(v.title)
	a.out.Printf("array capacity: %d, list: unbounded\n", a.cfg.Capacity)
	a.out.Printf("1. %s\n2. %s\n3. show\n4. exit\n", v.insert, v.remove)
	for {
		op, err := a.in.IntRange("\noperation: ", 1, 4)
		if err != nil {
			return err
		}
		switch op {
		case 1:
			value, err := a.in.Int("value: ")
			if err != nil {
				return err
			}
			for _, o := range p.Insert(value) {
				switch {
				case errors.Is(o.Err, container.ErrFull):
					a.out.Warn("%s is full, %d was not %s", o.Name, value, v.inserted)
				case o.Err != nil:
					return o.Err
				default:
					a.out.OK("%s: %s %d", o.Name, v.inserted, value)
				}
			}
		case 2:
			for _, o := range p.Remove() {
				switch {
				case errors.Is(o.Err, container.ErrEmpty):
					a.out.Warn("%s is empty", o.Name)
				case o.Err != nil:
					return o.Err
				default:
					a.out.OK("%s: %s %d", o.Name, v.removed, o.Value)
				}
			}
		case 3:
			for _, view := range p.Snapshot() {
				display.Seq(a.out, view.Name, slices.Values(view.Values))
			}
			if p.Diverged() {
				a.out.Warn("the containers hold different values")
			}
		case 4:
			return nil
		}
		a.log.Debugw("container step", "kind", p.Kind().String(), "operation", op)
	}
}
