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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/gomoku/pkg/gomoku"
)

func TestHuman_Propose(t *testing.T) {
	board := gomoku.NewBoard(15).String()

	t.Run("wraps coordinates into the wire reply", func(t *testing.T) {
		var prompt strings.Builder
		player := NewHuman(strings.NewReader("7 8\n"), &prompt)

		reply, err := player.Propose(context.Background(), board, gomoku.Black)
		require.NoError(t, err)
		require.Equal(t, `{"row": 7, "col": 8}`, reply)

		assert.Contains(t, prompt.String(), "X to move")
	})

	t.Run("passes garbage through for the validator to reject", func(t *testing.T) {
		player := NewHuman(strings.NewReader("resign\n"), &strings.Builder{})

		reply, err := player.Propose(context.Background(), board, gomoku.White)
		require.NoError(t, err)
		require.Equal(t, "resign", reply)
	})

	t.Run("missing trailing newline", func(t *testing.T) {
		player := NewHuman(strings.NewReader("3 4"), &strings.Builder{})

		reply, err := player.Propose(context.Background(), board, gomoku.White)
		require.NoError(t, err)
		require.Equal(t, `{"row": 3, "col": 4}`, reply)
	})

	t.Run("closed input", func(t *testing.T) {
		player := NewHuman(strings.NewReader(""), &strings.Builder{})

		_, err := player.Propose(context.Background(), board, gomoku.Black)
		require.Error(t, err)
	})
}
