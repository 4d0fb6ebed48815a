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

// Package simulate measures how well the scheduler avoids repeated
// partnerships for a roster by running it many times over.
package simulate

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/history"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/roster"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/schedule"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/stats"
)

// Config describes a simulation.
type Config struct {
	Entries []roster.Entry
	Rounds  int

	// Trials is the number of schedules generated.
	Trials int

	// Concurrency is the maximum number of schedules generated at once;
	// values below one mean one.
	Concurrency int

	// Seed of the first trial, trial i is seeded with Seed+i.
	Seed int64

	Policy history.Policy
	Search schedule.Search

	// Logger receives the engine logs of every trial, which are discarded
	// if it is nil.
	Logger logrus.FieldLogger
}

// Result is the aggregate of every trial of a simulation.
type Result struct {
	Trials int

	// Rounds is the total number of rounds scheduled over all the trials
	// and Fallbacks the number of those which repeat a partnership.
	Rounds    int
	Fallbacks int

	// Partial is the number of trials which stopped early.
	Partial int

	// Repeats is the total number of repeated pairs over all the trials.
	Repeats int

	// MeanRounds is the average number of rounds of a single schedule.
	MeanRounds float64
}

// FallbackRate returns the measured rate of fallback rounds along with its
// confidence interval.
func (result Result) FallbackRate() (lower, p, upper float64) {
	return stats.Proportion(result.Fallbacks, result.Rounds)
}

// PartialRate returns the measured rate of partial schedules along with
// its confidence interval.
func (result Result) PartialRate() (lower, p, upper float64) {
	return stats.Proportion(result.Partial, result.Trials)
}

// RepeatsPerRound returns the average number of repeated pairs per round.
func (result Result) RepeatsPerRound() float64 {
	if result.Rounds == 0 {
		return 0
	}

	return float64(result.Repeats) / float64(result.Rounds)
}

type trial struct {
	rounds, fallbacks, repeats int
	partial                    bool
}

// Run validates the roster and runs the simulation. Trials are spread over
// Config.Concurrency workers; the Result only depends on the Config, not
// on how the trials were scheduled. Cancelling the context stops new
// trials from being started and returns the context's error.
func Run(ctx context.Context, config Config) (Result, error) {
	if config.Trials < 0 {
		return Result{}, fmt.Errorf("simulate: invalid trial count %d", config.Trials)
	}

	accepted, err := roster.Validate(config.Entries, config.Rounds)
	if err != nil {
		return Result{}, err
	}

	logger := config.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	concurrency := config.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	trials := make([]trial, config.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range trials {
		if gctx.Err() != nil {
			break
		}

		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			engine := schedule.NewEngine(schedule.Config{
				Policy: config.Policy,
				Search: config.Search,
				Rand:   rand.New(rand.NewSource(config.Seed + int64(i))),
				Logger: logger.WithField("trial", i),
			})

			generated := engine.Run(accepted.Entries, accepted.Rounds)
			report := schedule.Summarize(generated, accepted.Entries, config.Policy)

			trials[i] = trial{
				rounds:    len(generated),
				fallbacks: report.Fallbacks,
				repeats:   report.Repeats,
				partial:   generated.Partial(accepted.Rounds),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	result := Result{Trials: len(trials)}
	rounds := make([]float64, len(trials))
	for i, trial := range trials {
		rounds[i] = float64(trial.rounds)
		result.Rounds += trial.rounds
		result.Fallbacks += trial.fallbacks
		result.Repeats += trial.repeats
		if trial.partial {
			result.Partial++
		}
	}

	result.MeanRounds = stats.Mean(rounds)
	return result, nil
}
