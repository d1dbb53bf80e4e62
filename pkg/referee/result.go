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

package referee

import "laptudirm.com/x/gomoku/pkg/gomoku"

// Result represents the result of a single game from black's side.
type Result int

const (
	BlackWins Result = +1
	Draw      Result = 0
	WhiteWins Result = -1
)

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case BlackWins:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case WhiteWins:
		return "0-1"
	default:
		return "?-?"
	}
}

// GameWonBy maps the winning Stone to the game's Result.
var GameWonBy = map[gomoku.Stone]Result{
	gomoku.Black: BlackWins,
	gomoku.White: WhiteWins,
}

// Verdict is the terminal outcome of a game, exposed for display and
// logging by the surrounding application. The referee never prints.
type Verdict struct {
	Result Result
	Winner gomoku.Stone // Empty on a draw
	Reason string

	// Forfeit is set when the losing side exhausted its retry budget
	// without producing a legal move.
	Forfeit bool

	// Moves is the ordered sequence of applied moves.
	Moves []gomoku.Move
}
