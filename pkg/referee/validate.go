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

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"laptudirm.com/x/gomoku/pkg/gomoku"
)

var (
	ErrMalformedReply  = errors.New("referee: reply does not decode into a move")
	ErrProposerTimeout = errors.New("referee: proposer timed out")
)

// Proposers are asked for a bare JSON object, but language models like
// to wrap their answer in chatter. Fish the first such object out of the
// reply before giving up on it.
var movePattern = regexp.MustCompile(`\{\s*"row"\s*:\s*-?\d+\s*,\s*"col"\s*:\s*-?\d+\s*\}`)

// wireMove is the reply contract: a JSON object with two integer fields.
// Pointers distinguish an absent field from a zero coordinate. Extra
// fields are ignored.
type wireMove struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

// ParseReply decodes a raw proposer reply into board coordinates. A
// strict decode of the whole reply is tried first, then an embedded
// move object.
func ParseReply(reply string) (int, int, error) {
	var wire wireMove
	if err := json.Unmarshal([]byte(reply), &wire); err == nil &&
		wire.Row != nil && wire.Col != nil {
		return *wire.Row, *wire.Col, nil
	}

	embedded := movePattern.FindString(reply)
	if embedded == "" {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedReply, reply)
	}

	wire = wireMove{}
	if err := json.Unmarshal([]byte(embedded), &wire); err != nil ||
		wire.Row == nil || wire.Col == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedReply, reply)
	}

	return *wire.Row, *wire.Col, nil
}

// Validate is the sole gate between a proposer's reply and committed
// game state. It parses the reply and checks the move's legality against
// the current Board. Every field the proposer supplies is re-checked;
// in particular the Stone is always the expected one, regardless of
// anything the reply claims.
func Validate(board gomoku.Board, reply string, stone gomoku.Stone) (gomoku.Move, error) {
	row, col, err := ParseReply(reply)
	if err != nil {
		return gomoku.Move{}, err
	}

	cell, err := board.Get(row, col)
	if err != nil {
		return gomoku.Move{}, err
	}

	if cell != gomoku.Empty {
		return gomoku.Move{}, fmt.Errorf("%w: (%d, %d)", gomoku.ErrCellOccupied, row, col)
	}

	return gomoku.Move{Row: row, Col: col, Stone: stone}, nil
}
