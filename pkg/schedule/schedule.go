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

// Package schedule assigns a roster of players, each with a number of
// games to play, into doubles rounds of two teams of two while trying to
// avoid pairing the same players together twice.
package schedule

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/history"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/roster"
)

// Option configures a call to New.
type Option func(*Config)

// WithPolicy sets which pairs of a round count as partners.
func WithPolicy(policy history.Policy) Option {
	return func(config *Config) { config.Policy = policy }
}

// WithSearch sets how hard each round looks for a repeat-free group.
func WithSearch(search Search) Option {
	return func(config *Config) { config.Search = search }
}

// WithRand sets the source of the shuffles.
func WithRand(shuffler Shuffler) Option {
	return func(config *Config) { config.Rand = shuffler }
}

// WithSeed makes the schedule reproducible by seeding the shuffles.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets where the engine logs each round and an early stop.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(config *Config) { config.Logger = logger }
}

// WithScope sets the scope the round, fallback and repeat metrics are
// reported to.
func WithScope(scope tally.Scope) Option {
	return func(config *Config) { config.Scope = scope }
}

// New validates the roster and schedules it into the given number of
// rounds. A roster which fails validation is returned as a
// *roster.ValidationError and never reaches the engine. A valid roster
// may still produce fewer rounds than requested; see Schedule.Partial.
func New(entries []roster.Entry, rounds int, options ...Option) (Schedule, error) {
	accepted, err := roster.Validate(entries, rounds)
	if err != nil {
		return nil, err
	}

	var config Config
	for _, option := range options {
		option(&config)
	}

	return NewEngine(config).Run(accepted.Entries, accepted.Rounds), nil
}
