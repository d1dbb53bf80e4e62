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

package cmd

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/gomoku/pkg/gomoku"
	"laptudirm.com/x/gomoku/pkg/oracle"
	"laptudirm.com/x/gomoku/pkg/referee"
)

// gomoku play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Referee a game of gomoku between two players",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`play referees a single game of gomoku (5-in-a-row) between
			the players bound to black and white. A binding is the name
			of an oracle from the records file (see gomoku oracles),
			"random" for a uniform random mover, or "human" for
			interactive entry.

			The referee owns the board: every proposal is validated
			before it is applied, and a side which fails to produce a
			legal move within its retry budget forfeits the game.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, _ := cmd.Flags().GetInt("size")
			retries, _ := cmd.Flags().GetInt("retries")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			var config referee.Config
			config.Size = size
			config.Retries = retries
			config.Timeout = timeout

			for i, color := range []string{"black", "white"} {
				binding, _ := cmd.Flags().GetString(color)
				if binding == "" {
					binding = defaultBinding()
				}

				player, err := oracle.NewPlayer(binding)
				if err != nil {
					return err
				}

				config.Players[i] = player
				config.Names[i] = binding
			}

			fmt.Printf(
				"\x1b[32mStarting\x1b[0m %s (X) vs %s (O) on a %dx%d board\n\n",
				config.Names[0], config.Names[1], size, size,
			)

			config.Report = func(move gomoku.Move, board gomoku.Board) {
				fmt.Printf("\n%s plays \x1b[33m%s\x1b[0m\n%s", move.Stone, move, render(board, move))
			}

			verdict := referee.Run(&config)

			fmt.Printf("\n\x1b[32m%s\x1b[0m %s", verdict.Result, verdict.Reason)
			if verdict.Winner != gomoku.Empty {
				fmt.Printf(" (\x1b[33m%s\x1b[0m wins in %d moves)", verdict.Winner, len(verdict.Moves))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("black", "human", "Player binding for black (X)")
	cmd.Flags().String("white", "", "Player binding for white (O), first oracle if empty")
	cmd.Flags().Int("size", gomoku.DefaultSize, "Side length of the board")
	cmd.Flags().Int("retries", referee.DefaultRetries, "Invalid proposals allowed per turn")
	cmd.Flags().Duration("timeout", referee.DefaultTimeout, "Deadline for a single proposal")

	return cmd
}

// defaultBinding picks the first configured oracle, falling back to the
// random mover on a machine with an empty records file.
func defaultBinding() string {
	if names := oracle.Oracles.Names(); len(names) > 0 {
		return names[0]
	}

	return "random"
}

// render draws the board with labeled axes, highlighting the last move.
func render(board gomoku.Board, last gomoku.Move) string {
	var builder strings.Builder

	builder.WriteString("  ")
	for col := 0; col < board.Size(); col++ {
		fmt.Fprintf(&builder, " %2d", col)
	}
	builder.WriteByte('\n')

	for row, line := range strings.Split(strings.TrimRight(board.String(), "\n"), "\n") {
		fmt.Fprintf(&builder, "%2d", row)
		for col, cell := range line {
			if row == last.Row && col == last.Col {
				fmt.Fprintf(&builder, "  \x1b[33m%c\x1b[0m", cell)
			} else {
				fmt.Fprintf(&builder, "  %c", cell)
			}
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
