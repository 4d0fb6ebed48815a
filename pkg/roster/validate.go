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
	"errors"
	"fmt"
	"math"
	"strings"
)

// PlayersPerRound is the number of players needed for a doubles round.
const PlayersPerRound = 4

// The reasons a roster can be rejected for. Every error returned by
// Validate wraps exactly one of these.
var (
	ErrInsufficientPlayers = errors.New("insufficient players")
	ErrDuplicateName       = errors.New("duplicate player name")
	ErrZeroQuota           = errors.New("player assigned zero games")
	ErrNegativeQuota       = errors.New("player assigned negative games")
	ErrSlotMismatch        = errors.New("assigned games do not match total available slots")
)

// ValidationError describes why a roster was rejected.
type ValidationError struct {
	Reason error

	// Player is the offending player, if the reason concerns one.
	Player string

	// Players, Games, and Rounds are the counted values at the moment the
	// roster was rejected.
	Players int
	Games   int
	Rounds  int
}

func (err *ValidationError) Error() string {
	switch err.Reason {
	case ErrInsufficientPlayers:
		return fmt.Sprintf("%s: got %d, need at least %d", err.Reason, err.Players, PlayersPerRound)
	case ErrDuplicateName, ErrZeroQuota, ErrNegativeQuota:
		return fmt.Sprintf("%s: %q", err.Reason, err.Player)
	case ErrSlotMismatch:
		if err.Rounds > 0 && err.Rounds <= math.MaxInt/PlayersPerRound {
			return fmt.Sprintf("%s: total assigned games (%d) must equal total slots (%d)", err.Reason, err.Games, err.Rounds*PlayersPerRound)
		}
		return fmt.Sprintf("%s: total assigned games (%d) cannot fill %d rounds", err.Reason, err.Games, err.Rounds)
	default:
		return err.Reason.Error()
	}
}

func (err *ValidationError) Unwrap() error {
	return err.Reason
}

// Accepted is a roster which has passed validation.
type Accepted struct {
	Entries []Entry
	Rounds  int
}

// Validate checks that the given entries can be scheduled into the given
// number of rounds. Names are trimmed and entries with an empty name are
// dropped along with their quota. The checks are made in order and the
// first failing one is reported:
//
//  1. there are at least four players
//  2. no two players share a name
//  3. every player is assigned at least one game
//  4. the assigned games add up to exactly four per round
//
// Validate has no side effects; the returned entries are a fresh slice.
func Validate(entries []Entry, rounds int) (Accepted, error) {
	var players []Entry
	for _, entry := range entries {
		entry.Name = strings.TrimSpace(entry.Name)
		if entry.Name != "" {
			players = append(players, entry)
		}
	}

	if len(players) < PlayersPerRound {
		return Accepted{}, &ValidationError{
			Reason:  ErrInsufficientPlayers,
			Players: len(players),
		}
	}

	seen := make(map[string]bool, len(players))
	for _, player := range players {
		if seen[player.Name] {
			return Accepted{}, &ValidationError{
				Reason:  ErrDuplicateName,
				Player:  player.Name,
				Players: len(players),
			}
		}

		seen[player.Name] = true
	}

	games, overflow := 0, false
	for _, player := range players {
		switch {
		case player.Quota == 0:
			return Accepted{}, &ValidationError{Reason: ErrZeroQuota, Player: player.Name, Players: len(players)}
		case player.Quota < 0:
			return Accepted{}, &ValidationError{Reason: ErrNegativeQuota, Player: player.Name, Players: len(players)}
		}

		if games > math.MaxInt-player.Quota {
			overflow = true
		}
		games += player.Quota
	}

	// Compare by division, rounds*PlayersPerRound can overflow.
	if overflow || rounds <= 0 || games%PlayersPerRound != 0 || games/PlayersPerRound != rounds {
		return Accepted{}, &ValidationError{
			Reason:  ErrSlotMismatch,
			Players: len(players),
			Games:   games,
			Rounds:  rounds,
		}
	}

	return Accepted{Entries: players, Rounds: rounds}, nil
}
