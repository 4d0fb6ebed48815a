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
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/history"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/roster"
)

// Config holds the knobs of a scheduling Engine.
type Config struct {
	Policy history.Policy
	Search Search

	// Rand is the source of randomness used to shuffle the eligible pool.
	// A time-seeded source is used if it is nil.
	Rand Shuffler

	Logger logrus.FieldLogger
	Scope  tally.Scope
}

// Engine schedules rosters into rounds.
type Engine struct {
	Config
}

// NewEngine returns an Engine with the given Config, filling in defaults
// for any unset collaborators.
func NewEngine(config Config) *Engine {
	if config.Rand == nil {
		config.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	if config.Scope == nil {
		config.Scope = tally.NoopScope
	}

	return &Engine{Config: config}
}

// Run schedules the given entries into at most the given number of rounds.
// Every call starts from a fresh roster and partner history, so calling it
// again with the same arguments regenerates the schedule with new
// randomness. Scheduling stops early once fewer than four players have
// games left, in which case the returned Schedule is shorter than asked.
//
// The entries are expected to have been validated.
func (engine *Engine) Run(entries []roster.Entry, rounds int) Schedule {
	players := roster.New(entries)
	hist := history.New(engine.Policy)
	builder := Builder{Search: engine.Search, Shuffler: engine.Rand}

	// A roster can never fill more rounds than its games allow, whatever
	// was asked for.
	capacity := min(max(rounds, 0), players.Slots()/roster.PlayersPerRound)

	var (
		scheduled = make(Schedule, 0, capacity)
		repeats   = 0
	)

	for index := 1; index <= rounds; index++ {
		pool := players.Eligible()
		if len(pool) < roster.PlayersPerRound {
			engine.Logger.WithFields(logrus.Fields{
				"round":     index,
				"eligible":  len(pool),
				"requested": rounds,
			}).Info("Not enough eligible players left, stopping early")
			engine.Scope.Counter("terminated_early").Inc(1)
			break
		}

		group, fallback := builder.SelectGroup(pool, hist)
		for _, player := range group {
			players.Assign(player)
		}

		round := Round{
			Index:    index,
			TeamA:    [2]string{group[0].Name, group[1].Name},
			TeamB:    [2]string{group[2].Name, group[3].Name},
			Fallback: fallback,
		}

		repeats += hist.Repeats(round.TeamA, round.TeamB)
		hist.Record(round.TeamA, round.TeamB)

		engine.Logger.WithFields(logrus.Fields{
			"round":    round.Index,
			"team-a":   round.TeamA,
			"team-b":   round.TeamB,
			"fallback": round.Fallback,
			"pool":     len(pool),
		}).Debug("Scheduled round")

		engine.Scope.Counter("rounds").Inc(1)
		if fallback {
			engine.Scope.Counter("fallbacks").Inc(1)
		}

		scheduled = append(scheduled, round)
	}

	engine.Scope.Gauge("repeat_pairs").Update(float64(repeats))
	return scheduled
}
