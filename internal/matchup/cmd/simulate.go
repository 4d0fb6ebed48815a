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
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/esg-sustainability/badminton-doubles-matchup/internal/util"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/simulate"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/stats"
)

// matchup simulate
func Simulate() *cobra.Command {
	var (
		inputs      inputFlags
		trials      int
		concurrency int
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "simulate [roster-file]",
		Short: "Measure how often a roster forces repeat pairings",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`simulate generates many schedules for the same roster and
			reports how often a game had to repeat a pairing because no
			fresh group of four could be found, and how often the
			schedule was cut short.

			Takes the same roster inputs as generate.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := inputs.resolve(cmd, args)
			if err != nil {
				return err
			}

			policy, search, err := knobs(file)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"trials":      trials,
				"concurrency": concurrency,
				"seed":        seed,
			}).Debug("Starting simulation")

			util.StartSpinner(fmt.Sprintf("Simulating %d schedules...", trials))
			result, err := simulate.Run(cmd.Context(), simulate.Config{
				Entries:     file.Players,
				Rounds:      file.Rounds,
				Trials:      trials,
				Concurrency: concurrency,
				Seed:        seed,
				Policy:      policy,
				Search:      search,
			})
			util.PauseSpinner()

			if err != nil {
				return err
			}

			printSimulation(cmd, result)
			return nil
		},
	}

	inputs.register(cmd)
	cmd.Flags().IntVarP(&trials, "trials", "n", 1000, "Number of schedules to generate")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", runtime.NumCPU(), "Number of schedules generated at once")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed of the first schedule")

	return cmd
}

func printSimulation(cmd *cobra.Command, result simulate.Result) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "%s\n\n", heading("Simulation"))
	fmt.Fprintf(w, "Schedules:       %d\n", result.Trials)
	fmt.Fprintf(w, "Games:           %d\n", result.Rounds)
	fmt.Fprintf(w, "Games/schedule:  %.2f\n", result.MeanRounds)

	lower, p, upper := result.FallbackRate()
	fmt.Fprintf(w, "Repeat games:    %5.1f%% [%.1f%%, %.1f%%]\n", 100*p, 100*lower, 100*upper)

	lower, p, upper = result.PartialRate()
	fmt.Fprintf(w, "Cut short:       %5.1f%% [%.1f%%, %.1f%%]\n", 100*p, 100*lower, 100*upper)

	fmt.Fprintf(w, "Repeats / game:  %.2f\n", result.RepeatsPerRound())
	fmt.Fprintf(w, "\nIntervals are at %.0f%% confidence.\n", 100*stats.Confidence)
}
