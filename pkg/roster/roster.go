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

package roster

import (
	"fmt"
	"math"
)

// Entry is a single line of a roster as supplied by the caller: a player's
// name and the total number of games they must play.
type Entry struct {
	Name  string `yaml:"name"`
	Quota int    `yaml:"games"`
}

// Player is the run-scoped record of a single player. Remaining starts out
// equal to Quota and is decremented every time the player is placed into
// a round, so that 0 <= Remaining <= Quota always holds.
type Player struct {
	Name      string
	Quota     int
	Remaining int
}

// Played returns the number of games the player has been assigned so far.
func (p *Player) Played() int {
	return p.Quota - p.Remaining
}

func (p *Player) String() string {
	return p.Name
}

// Roster holds every Player of a single scheduling run in input order.
type Roster struct {
	players []*Player
}

// New creates a fresh Roster from the given entries with every player's
// remaining games reset to their quota. The entries are not validated.
func New(entries []Entry) *Roster {
	roster := &Roster{
		players: make([]*Player, 0, len(entries)),
	}

	for _, entry := range entries {
		player := &Player{
			Name:      entry.Name,
			Quota:     entry.Quota,
			Remaining: entry.Quota,
		}

		roster.players = append(roster.players, player)
	}

	return roster
}

// Players returns every player of the roster in input order.
func (roster *Roster) Players() []*Player {
	return roster.players
}

// Eligible returns the players who still have games left to play, in
// input order. This is the pool a round is selected from.
func (roster *Roster) Eligible() []*Player {
	var pool []*Player
	for _, player := range roster.players {
		if player.Remaining > 0 {
			pool = append(pool, player)
		}
	}

	return pool
}

// Assign places the given player into a round, using up one of their
// remaining games. Assigning a player with no games left is a bug in the
// caller, so it panics.
func (roster *Roster) Assign(player *Player) {
	if player.Remaining <= 0 {
		panic(fmt.Sprintf("roster: assign %s: no games remaining", player.Name))
	}

	player.Remaining--
}

// Slots returns the total number of games requested by the roster.
// Players with no games are not counted and the total saturates at
// math.MaxInt.
func (roster *Roster) Slots() int {
	slots := 0
	for _, player := range roster.players {
		if player.Quota <= 0 {
			continue
		}

		if slots > math.MaxInt-player.Quota {
			return math.MaxInt
		}
		slots += player.Quota
	}

	return slots
}
