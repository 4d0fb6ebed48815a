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

package schedule

import (
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/history"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/roster"
)

// Report summarises how well a Schedule fulfilled its roster.
type Report struct {
	Players []PlayerReport

	// Repeats is the number of pairs, under the partner policy, which
	// had already partnered earlier in the schedule.
	Repeats   int
	Fallbacks int
}

// PlayerReport is a single player's line of a Report.
type PlayerReport struct {
	Name     string
	Quota    int
	Played   int
	Partners []string
}

// Complete reports whether the player played every game of their quota.
func (report PlayerReport) Complete() bool {
	return report.Played == report.Quota
}

// Summarize replays the schedule against the roster it was generated from.
func Summarize(schedule Schedule, entries []roster.Entry, policy history.Policy) Report {
	hist := history.New(policy)
	report := Report{Fallbacks: schedule.Fallbacks()}

	for _, round := range schedule {
		report.Repeats += hist.Repeats(round.TeamA, round.TeamB)
		hist.Record(round.TeamA, round.TeamB)
	}

	appearances := schedule.Appearances()
	for _, entry := range entries {
		report.Players = append(report.Players, PlayerReport{
			Name:     entry.Name,
			Quota:    entry.Quota,
			Played:   appearances[entry.Name],
			Partners: hist.Partners(entry.Name),
		})
	}

	return report
}
