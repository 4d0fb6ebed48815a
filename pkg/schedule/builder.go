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

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/history"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/roster"
)

// Search decides how far the Builder looks for a group of four players
// without a repeated partnership before falling back.
type Search int

const (
	// Windows tries every contiguous window of four over the shuffled pool.
	Windows Search = iota

	// FirstFour only tries the first four players of the shuffled pool.
	FirstFour
)

// ParseSearch returns the Search with the given name.
func ParseSearch(name string) (Search, error) {
	switch name {
	case "windows", "":
		return Windows, nil
	case "first-four":
		return FirstFour, nil
	default:
		return 0, fmt.Errorf("parse search: invalid search %s", name)
	}
}

func (search Search) String() string {
	switch search {
	case Windows:
		return "windows"
	case FirstFour:
		return "first-four"
	default:
		return "unknown"
	}
}

// Shuffler is a source of uniform random permutations. *rand.Rand from
// math/rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Builder selects the players of a single round.
type Builder struct {
	Search   Search
	Shuffler Shuffler
}

// SelectGroup picks four players from the pool for the next round. The
// pool is shuffled and the first window of four players whose members
// have never partnered each other is returned in shuffled order. If there
// is no such window, the first four shuffled players are returned and
// fallback is set. The pool itself is left untouched.
//
// SelectGroup panics if the pool has fewer than four players.
func (builder *Builder) SelectGroup(pool []*roster.Player, hist *history.History) (group [4]*roster.Player, fallback bool) {
	if len(pool) < roster.PlayersPerRound {
		panic(fmt.Sprintf("schedule: select group: pool of %d players", len(pool)))
	}

	shuffled := make([]*roster.Player, len(pool))
	copy(shuffled, pool)
	builder.Shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	windows := len(shuffled) - roster.PlayersPerRound + 1
	if builder.Search == FirstFour {
		windows = 1
	}

	names := make([]string, roster.PlayersPerRound)
	for start := 0; start < windows; start++ {
		window := shuffled[start : start+roster.PlayersPerRound]
		for i, player := range window {
			names[i] = player.Name
		}

		if hist.CanFormGroup(names) {
			copy(group[:], window)
			return group, false
		}
	}

	copy(group[:], shuffled)
	return group, true
}
