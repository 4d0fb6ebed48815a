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
	"fmt"
	"strings"
)

// Round is a single doubles match between two teams of two players.
type Round struct {
	// Index is the 1-based number of the round.
	Index int

	TeamA [2]string
	TeamB [2]string

	// Fallback is set when no group of four players free of repeated
	// partnerships could be found and the round was filled regardless.
	Fallback bool
}

// Players returns the four players of the round, Team A first.
func (round Round) Players() [4]string {
	return [4]string{round.TeamA[0], round.TeamA[1], round.TeamB[0], round.TeamB[1]}
}

func (round Round) String() string {
	return fmt.Sprintf("Game %d: %s vs %s",
		round.Index,
		strings.Join(round.TeamA[:], " & "),
		strings.Join(round.TeamB[:], " & "),
	)
}

// Schedule is the ordered list of rounds produced by a scheduling run.
type Schedule []Round

// Partial reports whether fewer rounds were scheduled than requested. The
// length of the Schedule is the only signal of this, so callers asking
// for n rounds should compare len(schedule) against n.
func (schedule Schedule) Partial(requested int) bool {
	return len(schedule) < requested
}

// Fallbacks returns the number of rounds which repeat a partnership.
func (schedule Schedule) Fallbacks() int {
	fallbacks := 0
	for _, round := range schedule {
		if round.Fallback {
			fallbacks++
		}
	}

	return fallbacks
}

// Appearances counts the number of rounds each player appears in.
func (schedule Schedule) Appearances() map[string]int {
	appearances := make(map[string]int)
	for _, round := range schedule {
		for _, name := range round.Players() {
			appearances[name]++
		}
	}

	return appearances
}
