package main

import (
	"errors"
	"fmt"

	"github.com/i5heu/GoCourseLab/pkg/tictactoe"
	"github.com/i5heu/GoCourseLab/pkg/todo"
)

func runTodo(a *app) error {
	a.out.Banner("TODO")
	list, err := todo.Open(a.cfg.TodoFile)
	if err != nil {
		return err
	}
	a.log.Infow("task list opened", "path", list.Path(), "tasks", list.Len())
	a.out.Printf("1. add task\n2. show tasks\n3. exit\n")
	for {
		op, err := a.in.IntRange("\noption: ", 1, 3)
		if err != nil {
			return err
		}
		switch op {
		case 1:
			task, err := a.in.Line("task: ")
			if err != nil {
				return err
			}
			switch err := list.Add(task); {
			case errors.Is(err, todo.ErrEmptyTask):
				a.out.Warn("empty task ignored")
			case err != nil:
				return err
			default:
				a.out.OK("task saved to %s", list.Path())
			}
		case 2:
			if list.Len() == 0 {
				a.out.Printf("no tasks\n")
			}
			for i, t := range list.Tasks() {
				a.out.Printf("%d. %s\n", i+1, t)
			}
		case 3:
			return nil
		}
	}
}

func runTicTacToe(a *app) error {
	a.out.Banner("TIC-TAC-TOE")
	g := tictactoe.New()
	for !g.Over() {
		a.out.Printf("\n%s\n", g)
		row, err := a.in.IntRange(fmt.Sprintf("player %c, row: ", g.Current()), 0, tictactoe.Size-1)
		if err != nil {
			return err
		}
		col, err := a.in.IntRange("column: ", 0, tictactoe.Size-1)
		if err != nil {
			return err
		}
		if err := g.Move(row, col); errors.Is(err, tictactoe.ErrOccupied) {
			a.out.Warn("cell %d,%d is taken, try again", row, col)
		} else if err != nil {
			return err
		}
	}
	a.out.Printf("\n%s\n", g)
	if w := g.Winner(); w != tictactoe.Empty {
		a.out.OK("player %c wins", w)
	} else {
		a.out.OK("draw")
	}
	return nil
}
