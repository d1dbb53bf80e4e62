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

// Package referee runs games of gomoku between untrusted move
// proposers. It owns board truth, legality, and termination: proposers
// are only ever shown serialized snapshots, and every reply passes
// through validation before it touches the board.
package referee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gomoku/pkg/gomoku"
)

// Proposer is the boundary to a move-proposing player. Given a
// serialized board and the stone to move, it returns a raw reply which
// is expected, but not guaranteed, to decode into a move. Each call is a
// fresh, independent attempt: the referee may re-invoke it any number of
// times for the same turn, and never assumes a call reuses state from a
// previous one. The context carries the per-call deadline.
type Proposer interface {
	Propose(ctx context.Context, board string, stone gomoku.Stone) (string, error)
}

const (
	DefaultRetries = 3
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	// Size is the board's side length, DefaultSize if zero.
	Size int

	// The players, indexed 0: black (X), 1: white (O).
	Players [2]Proposer
	Names   [2]string

	// Retries is the number of invalid proposals a side is allowed per
	// turn before it forfeits the game. DefaultRetries if zero.
	Retries int

	// Timeout is the deadline for a single proposer call. A timed out
	// call burns one retry. DefaultTimeout if zero.
	Timeout time.Duration

	// Report, if set, is called after every applied move with the
	// resulting board. Used by the CLI to render the game live.
	Report func(move gomoku.Move, board gomoku.Board)
}

// Run referees a single game and returns its Verdict. Black moves
// first. The loop is strictly turn-sequential: one proposal is
// validated and at most one move applied at a time.
func Run(config *Config) Verdict {
	size := config.Size
	if size == 0 {
		size = gomoku.DefaultSize
	}

	retries := config.Retries
	if retries == 0 {
		retries = DefaultRetries
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	board := gomoku.NewBoard(size)
	moves := []gomoku.Move{}

	stone := gomoku.Black
	playerToMove := 0
	for {
		player := config.Players[playerToMove]
		name := config.Names[playerToMove]

		move, err := askForMove(player, name, board, stone, retries, timeout)
		if err != nil {
			// The side to move never produced a legal move within its
			// retry budget: it forfeits, the game does not stall.
			return Verdict{
				Result:  GameWonBy[stone.Other()],
				Winner:  stone.Other(),
				Reason:  err.Error(),
				Forfeit: true,
				Moves:   moves,
			}
		}

		board, err = board.Place(move)
		if err != nil {
			// Validate just vouched for this move.
			panic(fmt.Sprintf("referee: validated move %s rejected by board: %v", move, err))
		}

		moves = append(moves, move)
		logrus.Debugf("info: (%s)> plays %s\n", name, move)

		if config.Report != nil {
			config.Report(move, board)
		}

		switch gomoku.Result(board, move) {
		case gomoku.Won:
			return Verdict{
				Result: GameWonBy[stone],
				Winner: stone,
				Reason: "five in a row",
				Moves:  moves,
			}
		case gomoku.Drawn:
			return Verdict{
				Result: Draw,
				Reason: "board full",
				Moves:  moves,
			}
		}

		stone = stone.Other()
		playerToMove ^= 1
	}
}

// askForMove negotiates one turn with the given player: propose,
// validate, and on an invalid proposal ask again, up to the retry
// budget. Every call hands the player a fresh serialized snapshot of
// the same board.
func askForMove(
	player Proposer, name string, board gomoku.Board,
	stone gomoku.Stone, retries int, timeout time.Duration,
) (gomoku.Move, error) {
	var lastErr error

	for attempt := 1; attempt <= retries; attempt++ {
		reply, err := propose(player, board.String(), stone, timeout)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				err = fmt.Errorf("%w after %s", ErrProposerTimeout, timeout)
			}

			logrus.Debugf("info: (%s)> attempt %d/%d failed: %v\n", name, attempt, retries, err)
			lastErr = err
			continue
		}

		logrus.Debugf("info: (%s)> %s\n", name, reply)

		move, err := Validate(board, reply, stone)
		if err == nil {
			return move, nil
		}

		logrus.Debugf("info: (%s)> attempt %d/%d rejected: %v\n", name, attempt, retries, err)
		lastErr = err
	}

	return gomoku.Move{}, fmt.Errorf("no legal move in %d attempts, last: %w", retries, lastErr)
}

// propose runs a single proposer call under its deadline.
func propose(player Proposer, board string, stone gomoku.Stone, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return player.Propose(ctx, board, stone)
}
