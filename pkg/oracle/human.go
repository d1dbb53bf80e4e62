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
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"laptudirm.com/x/gomoku/pkg/gomoku"
)

// Human reads moves from an interactive terminal. Input is wrapped into
// the same wire reply every other proposer produces, so a typo is just
// an invalid proposal: the referee rejects it and asks again, under the
// usual retry budget.
type Human struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewHuman(reader io.Reader, writer io.Writer) *Human {
	return &Human{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Propose implements referee.Proposer.
func (player *Human) Propose(_ context.Context, _ string, stone gomoku.Stone) (string, error) {
	fmt.Fprintf(player.writer, "\x1b[34m%c to move\x1b[0m (row col): ", stone.Rune())

	line, err := player.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		// Hand the raw line to the validator and let it burn a retry.
		return strings.TrimSpace(line), nil
	}

	return fmt.Sprintf(`{"row": %s, "col": %s}`, fields[0], fields[1]), nil
}
