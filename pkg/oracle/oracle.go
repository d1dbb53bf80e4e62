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

// Package oracle provides the move proposers a game can be played
// with: configured language-model endpoints, a random mover, and an
// interactive human. All of them speak the same wire contract and are
// equally untrusted by the referee.
package oracle

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"

	"laptudirm.com/x/gomoku/pkg/common"
	"laptudirm.com/x/gomoku/pkg/referee"
)

// Config is a single oracle record from the records file.
type Config struct {
	URL   string `yaml:"url"`
	Model string `yaml:"model"`

	// KeyEnv names the environment variable holding the API key. It may
	// be empty for local endpoints which need no authentication.
	KeyEnv string `yaml:"key-env,omitempty"`
}

type ConfigList map[string]Config

// Oracles are the records in the user's oracles.yaml file.
var Oracles ConfigList

func init() {
	common.TryMkdir(common.Directory)
	common.TryCreate(common.OraclesFile, common.BaseOracleFile)

	file, _ := os.ReadFile(common.OraclesFile)
	_ = yaml.Unmarshal(file, &Oracles)
}

// Names returns the configured oracle names in a stable order.
func (list ConfigList) Names() []string {
	names := make([]string, 0, len(list))
	for name := range list {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

var ErrUnknownOracle = errors.New("oracle: no such oracle in the records file")

// NewPlayer resolves a color binding into a Proposer. A binding is the
// name of a configured oracle, "random" for the uniform random mover,
// or "human" for interactive entry.
func NewPlayer(binding string) (referee.Proposer, error) {
	switch binding {
	case "random":
		return NewRandom(), nil
	case "human":
		return NewHuman(os.Stdin, os.Stdout), nil
	default:
		config, found := Oracles[binding]
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOracle, binding)
		}

		return NewOpenAI(binding, config), nil
	}
}
