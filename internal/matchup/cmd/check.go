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

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/roster"
)

// matchup check
func Check() *cobra.Command {
	var inputs inputFlags

	cmd := &cobra.Command{
		Use:   "check [roster-file]",
		Short: "Check that a roster can be scheduled",
		Args:  cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := inputs.resolve(cmd, args)
			if err != nil {
				return err
			}

			if _, _, err := knobs(file); err != nil {
				return err
			}

			accepted, err := roster.Validate(file.Players, file.Rounds)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d players, %d games\n",
				heading("Roster OK:"), len(accepted.Entries), accepted.Rounds)
			return nil
		},
	}

	inputs.register(cmd)
	return cmd
}
