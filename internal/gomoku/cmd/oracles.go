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

	"github.com/spf13/cobra"

	"laptudirm.com/x/gomoku/pkg/oracle"
)

func Oracles() *cobra.Command {
	return &cobra.Command{
		Use:   "oracles",
		Short: "Lists the configured move-proposing oracles",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			names := oracle.Oracles.Names()
			if len(names) == 0 {
				fmt.Println("\x1b[31mNo Oracles Configured.\x1b[0m")
				return nil
			}

			fmt.Print("\u001B[32mConfigured Oracles\u001B[0m:\n\n")

			for _, name := range names {
				config := oracle.Oracles[name]

				title := fmt.Sprintf("\x1b[34m%s\x1b[0m:", name)
				fmt.Printf("- %-20s \x1b[33m%s\x1b[0m @ %s\n", title, config.Model, config.URL)
			}

			return nil
		},
	}
}
