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
	"math/rand"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/common"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/roster"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/schedule"
)

// matchup generate
func Generate() *cobra.Command {
	var (
		inputs inputFlags
		seed   int64
		noSave bool
	)

	cmd := &cobra.Command{
		Use:   "generate [roster-file]",
		Short: "Generate a schedule of doubles games",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`generate splits the players of a roster into games of two
			teams of two, so that every player plays exactly as many games
			as they asked for while the same players are paired together
			as rarely as possible.

			Players are read from the given roster file, from --player
			flags, or both. A roster file looks like:

			    rounds: 2
			    players:
			      - name: Alice
			        games: 2
			      - name: Bob
			        games: 2

			The total number of games of all the players must be four times
			the number of rounds. If the players run out before every round
			is filled, the schedule is cut short and a notice is shown.

			The inputs are remembered so that "matchup regenerate" can
			shuffle a new schedule out of them.`),
		Example: heredoc.Doc(`
			matchup generate roster.yaml
			matchup generate -r 1 -p Alice:1 -p Bob:1 -p Carol:1 -p Dan:1
		`),

		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := inputs.resolve(cmd, args)
			if err != nil {
				return err
			}

			var shuffler schedule.Shuffler
			if cmd.Flags().Changed("seed") {
				shuffler = rand.New(rand.NewSource(seed))
			}

			if err := run(cmd, file, shuffler); err != nil {
				return err
			}

			if noSave {
				return nil
			}

			logrus.WithField("file", common.LastInputsFile).Debug("Saving the inputs")
			return file.Dump(common.LastInputsFile)
		},
	}

	inputs.register(cmd)
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed the shuffles for a reproducible schedule")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Don't remember the inputs for regenerate")

	return cmd
}

// run schedules the roster file and prints the result. A nil shuffler
// means fresh randomness.
func run(cmd *cobra.Command, file roster.File, shuffler schedule.Shuffler) error {
	policy, search, err := knobs(file)
	if err != nil {
		return err
	}

	accepted, err := roster.Validate(file.Players, file.Rounds)
	if err != nil {
		return err
	}

	engine := schedule.NewEngine(schedule.Config{
		Policy: policy,
		Search: search,
		Rand:   shuffler,
	})
	generated := engine.Run(accepted.Entries, accepted.Rounds)

	printSchedule(cmd.OutOrStdout(), generated, accepted.Rounds)
	printReport(cmd.OutOrStdout(), schedule.Summarize(generated, accepted.Entries, policy))
	return nil
}
