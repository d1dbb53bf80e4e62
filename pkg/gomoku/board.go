// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gomoku implements the rules of Gomoku: the board, move
// application, and result detection. It knows nothing about players or
// how moves are produced.
package gomoku

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSize is the conventional gomoku board size.
const DefaultSize = 15

// Stone is the state of a single board cell.
type Stone uint8

const (
	Empty Stone = iota
	Black
	White
)

// Rune returns the serialization character of the given Stone.
func (stone Stone) Rune() rune {
	switch stone {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}

// Other returns the opponent of the given Stone.
func (stone Stone) Other() Stone {
	switch stone {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// String returns a string representation of the given Stone.
func (stone Stone) String() string {
	switch stone {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

var (
	ErrOutOfRange   = errors.New("gomoku: coordinates outside the board")
	ErrCellOccupied = errors.New("gomoku: cell is already occupied")
)

// Move is a single stone placement. Only the coordinates travel on the
// wire; the Stone is stamped by the referee, never by the proposer.
type Move struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Stone Stone `json:"-"`
}

// String returns a string representation of the given Move.
func (move Move) String() string {
	return fmt.Sprintf("%c(%d, %d)", move.Stone.Rune(), move.Row, move.Col)
}

// Board is an immutable square grid of Stones. Place returns a fresh
// Board, so snapshots handed out earlier never change under the caller.
type Board struct {
	size  int
	cells []Stone
}

// NewBoard returns an empty size×size Board.
func NewBoard(size int) Board {
	return Board{
		size:  size,
		cells: make([]Stone, size*size),
	}
}

// Size returns the side length of the Board.
func (board Board) Size() int {
	return board.size
}

// Get returns the Stone at the given cell.
func (board Board) Get(row, col int) (Stone, error) {
	if row < 0 || row >= board.size || col < 0 || col >= board.size {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}

	return board.cells[row*board.size+col], nil
}

// Place puts the move's Stone on its cell and returns the resulting
// Board. The receiver is left untouched. Exactly one cell differs
// between the two boards.
func (board Board) Place(move Move) (Board, error) {
	cell, err := board.Get(move.Row, move.Col)
	if err != nil {
		return board, err
	}

	if cell != Empty {
		return board, fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, move.Row, move.Col)
	}

	next := Board{
		size:  board.size,
		cells: make([]Stone, len(board.cells)),
	}
	copy(next.cells, board.cells)
	next.cells[move.Row*board.size+move.Col] = move.Stone

	return next, nil
}

// Full reports whether no Empty cell remains.
func (board Board) Full() bool {
	for _, cell := range board.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// String serializes the Board as one rune per cell, row-major, with a
// newline after every row. Identical positions always serialize to
// byte-identical strings. This is the only representation ever exposed
// to a move proposer.
func (board Board) String() string {
	var builder strings.Builder
	builder.Grow((board.size + 1) * board.size)

	for row := 0; row < board.size; row++ {
		for col := 0; col < board.size; col++ {
			builder.WriteRune(board.cells[row*board.size+col].Rune())
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
