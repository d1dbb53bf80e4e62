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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"laptudirm.com/x/gomoku/pkg/gomoku"
	"laptudirm.com/x/gomoku/pkg/internal/util"
)

// OpenAI proposes moves by asking an OpenAI-compatible chat-completions
// endpoint. The reply content is handed back raw: deciding whether it
// actually contains a legal move is the referee's job, not ours.
type OpenAI struct {
	name   string
	config Config
	client *http.Client
}

func NewOpenAI(name string, config Config) *OpenAI {
	return &OpenAI{
		name:   name,
		config: config,
		// Timeouts come from the per-call context, not the client.
		client: &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

var ErrEmptyCompletion = errors.New("oracle: completion contains no choices")

// Propose implements referee.Proposer.
func (oracle *OpenAI) Propose(ctx context.Context, board string, stone gomoku.Stone) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    oracle.config.Model,
		Messages: messages(board, stone),
	})
	if err != nil {
		return "", err
	}

	endpoint := strings.TrimSuffix(oracle.config.URL, "/") + "/chat/completions"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	request.Header.Set("Content-Type", "application/json")
	if oracle.config.KeyEnv != "" {
		request.Header.Set("Authorization", "Bearer "+os.Getenv(oracle.config.KeyEnv))
	}

	// Start the spinner while the model thinks.
	util.StartSpinner()
	defer util.PauseSpinner()

	response, err := oracle.client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oracle: %s replied %s", oracle.name, response.Status)
	}

	var completion chatResponse
	if err := json.NewDecoder(response.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("oracle: %s: %w", oracle.name, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w (%s)", ErrEmptyCompletion, oracle.name)
	}

	return completion.Choices[0].Message.Content, nil
}

// messages builds the two-message prompt for the given position: an
// engine-style system message fixing the move priorities, and a user
// message framing the labeled board and demanding a bare JSON object.
func messages(board string, stone gomoku.Stone) []chatMessage {
	player := string(stone.Rune())
	rival := string(stone.Other().Rune())
	size := boardSize(board)

	system := fmt.Sprintf(
		"You are a professional Gomoku (5-in-a-row) player acting as a tactical engine. "+
			"You play as %s and the opponent plays as %s. "+
			"Evaluate the board using this priority order:\n"+
			"1. If there is a move that wins immediately, choose it.\n"+
			"2. If the opponent has a move that wins next turn, block it.\n"+
			"3. If there is a move that creates an open 4, choose it.\n"+
			"4. If there is a move that blocks opponent's open 4, choose it.\n"+
			"5. If there is a move that creates an open 3, choose it.\n"+
			"6. Otherwise, play the strongest positional move that advances your attack or limits theirs.\n"+
			"Output only the coordinates of the chosen move.",
		player, rival,
	)

	user := fmt.Sprintf(
		"Here is the current board. The grid is %dx%d, with row and column indices labeled.\n"+
			"Cells contain:\n"+
			"- \".\" for empty\n"+
			"- %q for your stones\n"+
			"- %q for opponent's stones\n"+
			"\n%s\n"+
			"Return ONLY a JSON object with two integers: row and col.\n"+
			"No extra text, no explanation, no code block.\n"+
			"\nExample:\n{ \"row\": 3, \"col\": 4 }",
		size, size, player, rival, labeled(board),
	)

	return []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
}

func boardSize(board string) int {
	return strings.Count(board, "\n")
}

// labeled decorates a serialized board with row and column indices for
// the model's benefit. The referee never sees this form.
func labeled(board string) string {
	rows := strings.Split(strings.TrimRight(board, "\n"), "\n")

	var builder strings.Builder
	builder.WriteString("  ")
	for col := range rows {
		fmt.Fprintf(&builder, " %2d", col)
	}
	builder.WriteByte('\n')

	for row, line := range rows {
		fmt.Fprintf(&builder, "%2d", row)
		for _, cell := range line {
			fmt.Fprintf(&builder, "  %c", cell)
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
