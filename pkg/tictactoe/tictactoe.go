// Package tictactoe is the two-player 3x3 game. X always moves first.
package tictactoe

import (
	"errors"
	"strings"
)

var (
	ErrOutOfBounds = errors.New("tictactoe: position outside the board")
	ErrOccupied    = errors.New("tictactoe: position already taken")
	ErrGameOver    = errors.New("tictactoe: game is over")
)

// Mark is the content of a cell.
type Mark byte

const (
	Empty Mark = ' '
	X     Mark = 'X'
	O     Mark = 'O'
)

const Size = 3

type Game struct {
	board   [Size][Size]Mark
	current Mark
	winner  Mark
	moves   int
}

func New() *Game {
	g := &Game{current: X, winner: Empty}
	for i := range g.board {
		for j := range g.board[i] {
			g.board[i][j] = Empty
		}
	}
	return g
}

// Current is the player to move next.
func (g *Game) Current() Mark { return g.current }

// Move places the current player's mark and passes the turn. Invalid moves
// leave the game unchanged.
func (g *Game) Move(row, col int) error {
	if g.Over() {
		return ErrGameOver
	}
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return ErrOutOfBounds
	}
	if g.board[row][col] != Empty {
		return ErrOccupied
	}
	g.board[row][col] = g.current
	g.moves++
	if g.lineThrough(row, col) {
		g.winner = g.current
	}
	if g.current == X {
		g.current = O
	} else {
		g.current = X
	}
	return nil
}

func (g *Game) lineThrough(row, col int) bool {
	m := g.board[row][col]
	b := &g.board
	if b[row][0] == m && b[row][1] == m && b[row][2] == m {
		return true
	}
	if b[0][col] == m && b[1][col] == m && b[2][col] == m {
		return true
	}
	if row == col && b[0][0] == m && b[1][1] == m && b[2][2] == m {
		return true
	}
	return row+col == Size-1 && b[0][2] == m && b[1][1] == m && b[2][0] == m
}

// Winner returns the winning mark, or Empty while nobody has won.
func (g *Game) Winner() Mark { return g.winner }

// Full reports whether every cell is taken.
func (g *Game) Full() bool { return g.moves == Size*Size }

func (g *Game) Over() bool { return g.winner != Empty || g.Full() }

func (g *Game) At(row, col int) Mark { return g.board[row][col] }

func (g *Game) String() string {
	var b strings.Builder
	b.WriteString("   0   1   2\n")
	for i := 0; i < Size; i++ {
		b.WriteByte(byte('0' + i))
		b.WriteString(" ")
		for j := 0; j < Size; j++ {
			b.WriteByte(' ')
			b.WriteByte(byte(g.board[i][j]))
			b.WriteByte(' ')
			if j < Size-1 {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		if i < Size-1 {
			b.WriteString("  -----------\n")
		}
	}
	return b.String()
}
