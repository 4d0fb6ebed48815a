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
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/schedule"
)

var (
	heading   = color.New(color.FgGreen, color.Bold).SprintFunc()
	warning   = color.New(color.FgYellow).SprintFunc()
	failure   = color.New(color.FgRed).SprintFunc()
	highlight = color.New(color.FgBlue).SprintFunc()
)

func printSchedule(w io.Writer, generated schedule.Schedule, requested int) {
	if len(generated) == 0 {
		fmt.Fprintln(w, failure("No valid schedule generated."))
		return
	}

	fmt.Fprintf(w, "%s\n\n", heading("Generated Schedule"))
	for _, round := range generated {
		line := fmt.Sprintf("Game %d: %s & %s vs %s & %s",
			round.Index,
			highlight(round.TeamA[0]), highlight(round.TeamA[1]),
			highlight(round.TeamB[0]), highlight(round.TeamB[1]),
		)

		if round.Fallback {
			line += warning(" (repeat pairing)")
		}

		fmt.Fprintln(w, line)
	}

	if generated.Partial(requested) {
		fmt.Fprintf(w, "\n%s\n", warning(fmt.Sprintf(
			"Partial schedule: only %d of %d games could be scheduled.",
			len(generated), requested,
		)))
	}
}

func printReport(w io.Writer, report schedule.Report) {
	fmt.Fprintf(w, "\n%s\n\n", heading("Players"))
	for _, player := range report.Players {
		games := fmt.Sprintf("%d/%d", player.Played, player.Quota)
		if !player.Complete() {
			games = failure(games)
		}

		fmt.Fprintf(w, "- %-20s %s games  with %s\n",
			player.Name, games, strings.Join(player.Partners, ", "))
	}

	fmt.Fprintf(w, "\nRepeated pairings: %d\n", report.Repeats)
}
