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

package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// place applies the moves in order, failing the test on any illegal one,
// and returns the final board with the last move.
func place(t *testing.T, size int, moves []Move) (Board, Move) {
	t.Helper()

	board := NewBoard(size)
	for _, move := range moves {
		var err error
		board, err = board.Place(move)
		require.NoError(t, err)
	}

	return board, moves[len(moves)-1]
}

func TestResult_Win(t *testing.T) {
	tests := []struct {
		name  string
		moves []Move
	}{
		{
			name: "horizontal",
			moves: []Move{
				{Row: 7, Col: 7, Stone: Black}, {Row: 7, Col: 8, Stone: Black},
				{Row: 7, Col: 9, Stone: Black}, {Row: 7, Col: 10, Stone: Black},
				{Row: 7, Col: 11, Stone: Black},
			},
		},
		{
			name: "vertical",
			moves: []Move{
				{Row: 3, Col: 4, Stone: White}, {Row: 4, Col: 4, Stone: White},
				{Row: 5, Col: 4, Stone: White}, {Row: 6, Col: 4, Stone: White},
				{Row: 7, Col: 4, Stone: White},
			},
		},
		{
			name: "major diagonal",
			moves: []Move{
				{Row: 2, Col: 2, Stone: Black}, {Row: 3, Col: 3, Stone: Black},
				{Row: 4, Col: 4, Stone: Black}, {Row: 5, Col: 5, Stone: Black},
				{Row: 6, Col: 6, Stone: Black},
			},
		},
		{
			name: "minor diagonal",
			moves: []Move{
				{Row: 2, Col: 10, Stone: White}, {Row: 3, Col: 9, Stone: White},
				{Row: 4, Col: 8, Stone: White}, {Row: 5, Col: 7, Stone: White},
				{Row: 6, Col: 6, Stone: White},
			},
		},
		{
			// The winning move lands in the middle of the run, not at
			// an end: both senses of the direction must be counted.
			name: "run completed from the middle",
			moves: []Move{
				{Row: 7, Col: 5, Stone: Black}, {Row: 7, Col: 6, Stone: Black},
				{Row: 7, Col: 8, Stone: Black}, {Row: 7, Col: 9, Stone: Black},
				{Row: 7, Col: 7, Stone: Black},
			},
		},
		{
			// A run longer than five still wins.
			name: "overline",
			moves: []Move{
				{Row: 7, Col: 4, Stone: Black}, {Row: 7, Col: 5, Stone: Black},
				{Row: 7, Col: 6, Stone: Black}, {Row: 7, Col: 8, Stone: Black},
				{Row: 7, Col: 9, Stone: Black}, {Row: 7, Col: 7, Stone: Black},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, last := place(t, 15, tt.moves)
			require.Equal(t, Won, Result(board, last))
		})
	}
}

func TestResult_FourIsNotEnough(t *testing.T) {
	board, last := place(t, 15, []Move{
		{Row: 7, Col: 7, Stone: Black}, {Row: 7, Col: 8, Stone: Black},
		{Row: 7, Col: 9, Stone: Black}, {Row: 7, Col: 10, Stone: Black},
	})

	require.Equal(t, Ongoing, Result(board, last))
}

func TestResult_BrokenRun(t *testing.T) {
	// Five black stones on one line, but split by a white stone.
	board, last := place(t, 15, []Move{
		{Row: 7, Col: 5, Stone: Black}, {Row: 7, Col: 6, Stone: Black},
		{Row: 7, Col: 7, Stone: White},
		{Row: 7, Col: 8, Stone: Black}, {Row: 7, Col: 9, Stone: Black},
		{Row: 7, Col: 10, Stone: Black},
	})

	require.Equal(t, Ongoing, Result(board, last))
}

func TestResult_Draw(t *testing.T) {
	// A 4x4 board cannot hold a run of five: filling it is a draw.
	size := 4

	var moves []Move
	stone := Black
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			moves = append(moves, Move{Row: row, Col: col, Stone: stone})
			stone = stone.Other()
		}
	}

	board, last := place(t, size, moves)
	require.True(t, board.Full())

	// A full board without a run is Drawn, never Ongoing.
	assert.Equal(t, Drawn, Result(board, last))
}

func TestResult_WinOnFullBoard(t *testing.T) {
	// The final stone both fills the board and completes a run: the win
	// takes precedence over the draw.
	size := 5

	var moves []Move
	for row := 0; row < size-1; row++ {
		for col := 0; col < size; col++ {
			stone := Black
			if (row+col/2)%2 == 0 {
				stone = White
			}
			moves = append(moves, Move{Row: row, Col: col, Stone: stone})
		}
	}
	for col := 0; col < size; col++ {
		moves = append(moves, Move{Row: size - 1, Col: col, Stone: Black})
	}

	board, last := place(t, size, moves)
	require.True(t, board.Full())
	require.Equal(t, Won, Result(board, last))
}

func TestResult_UnappliedMovePanics(t *testing.T) {
	board := NewBoard(15)

	// A result check on a cell the move never reached is a referee
	// defect and must fail loudly.
	require.Panics(t, func() {
		Result(board, Move{Row: 7, Col: 7, Stone: Black})
	})
}
