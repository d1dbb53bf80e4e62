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

import "fmt"

// WinLength is the run length required to win the game.
const WinLength = 5

// Status is the state of a game after some move.
type Status uint8

const (
	Ongoing Status = iota
	Won            // the side which played the last move has won
	Drawn
)

// The four line directions passing through any cell.
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // major diagonal
	{1, -1}, // minor diagonal
}

// Result returns the Status of the Board after the given move has been
// applied to it. Only the four lines passing through the move's cell are
// scanned, which keeps result detection linear in the board size.
func Result(board Board, last Move) Status {
	cell, err := board.Get(last.Row, last.Col)
	if err != nil || cell == Empty || cell != last.Stone {
		// The caller handed us a move which isn't on the board: a
		// referee bug, not bad input.
		panic(fmt.Sprintf("gomoku: result check on unapplied move %s", last))
	}

	for _, direction := range directions {
		if runLength(board, last, direction[0], direction[1]) >= WinLength {
			return Won
		}
	}

	if board.Full() {
		return Drawn
	}

	return Ongoing
}

// runLength returns the length of the contiguous run of the move's Stone
// along the given direction, counting outwards from the move's cell in
// both senses.
func runLength(board Board, last Move, dRow, dCol int) int {
	length := 1

	for _, sense := range [2]int{+1, -1} {
		for step := 1; ; step++ {
			row := last.Row + dRow*step*sense
			col := last.Col + dCol*step*sense

			cell, err := board.Get(row, col)
			if err != nil || cell != last.Stone {
				break
			}

			length++
		}
	}

	return length
}
