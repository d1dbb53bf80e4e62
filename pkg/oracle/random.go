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

package oracle

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"laptudirm.com/x/gomoku/pkg/gomoku"
)

// Random proposes a uniformly random legal move. Like every proposer it
// works off the serialized board alone, so it goes through the same
// validation gate as the language models it substitutes for.
type Random struct{}

func NewRandom() *Random {
	return &Random{}
}

var ErrNoEmptyCell = errors.New("oracle: no empty cell to propose")

// Propose implements referee.Proposer.
func (oracle *Random) Propose(_ context.Context, board string, _ gomoku.Stone) (string, error) {
	type cell struct{ row, col int }

	var empty []cell
	for row, line := range strings.Split(strings.TrimRight(board, "\n"), "\n") {
		for col, r := range line {
			if r == gomoku.Empty.Rune() {
				empty = append(empty, cell{row, col})
			}
		}
	}

	if len(empty) == 0 {
		return "", ErrNoEmptyCell
	}

	chosen := empty[rand.Intn(len(empty))] //nolint:gosec // not a crypto context

	return fmt.Sprintf(`{"row": %d, "col": %d}`, chosen.row, chosen.col), nil
}
