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

// Package history keeps track of which players have already been paired
// with each other over the course of a single scheduling run.
package history

import (
	"fmt"
	"sort"

	"github.com/esg-sustainability/badminton-doubles-matchup/internal/util"
)

// Policy decides which pairs of a round count as partnered.
type Policy int

const (
	// WholeGroup records every pair of the four players on court.
	WholeGroup Policy = iota

	// TeamOnly records only the two pairs which shared a team.
	TeamOnly
)

// ParsePolicy returns the Policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "whole-group", "":
		return WholeGroup, nil
	case "team":
		return TeamOnly, nil
	default:
		return 0, fmt.Errorf("parse policy: invalid partner policy %s", name)
	}
}

func (policy Policy) String() string {
	switch policy {
	case WholeGroup:
		return "whole-group"
	case TeamOnly:
		return "team"
	default:
		return "unknown"
	}
}

// History is the partner relation of a scheduling run. The relation is
// symmetric and only ever grows.
type History struct {
	policy   Policy
	partners map[string]map[string]struct{}
}

// New returns an empty History recording partners with the given Policy.
func New(policy Policy) *History {
	return &History{
		policy:   policy,
		partners: make(map[string]map[string]struct{}),
	}
}

// Partnered reports whether the two players have been partners in a
// previous round.
func (history *History) Partnered(a, b string) bool {
	_, found := history.partners[a][b]
	return found
}

// CanFormGroup reports whether no two of the given players have been
// partners before.
func (history *History) CanFormGroup(group []string) bool {
	for i := range group {
		for j := i + 1; j < len(group); j++ {
			if history.Partnered(group[i], group[j]) {
				return false
			}
		}
	}

	return true
}

// Record adds the pairs of a round to the History.
func (history *History) Record(teamA, teamB [2]string) {
	for _, pair := range history.pairs(teamA, teamB) {
		history.link(pair[0], pair[1])
		history.link(pair[1], pair[0])
	}
}

// Repeats returns the number of the round's pairs, per the policy, which
// were already partners before it.
func (history *History) Repeats(teamA, teamB [2]string) int {
	repeats := 0
	for _, pair := range history.pairs(teamA, teamB) {
		if history.Partnered(pair[0], pair[1]) {
			repeats++
		}
	}

	return repeats
}

// Partners returns the names of everyone the player has partnered in
// natural order.
func (history *History) Partners(name string) []string {
	partners := make([]string, 0, len(history.partners[name]))
	for partner := range history.partners[name] {
		partners = append(partners, partner)
	}

	sort.Slice(partners, func(i, j int) bool {
		return util.NaturalLess(partners[i], partners[j])
	})
	return partners
}

func (history *History) pairs(teamA, teamB [2]string) [][2]string {
	if history.policy == TeamOnly {
		return [][2]string{teamA, teamB}
	}

	group := [4]string{teamA[0], teamA[1], teamB[0], teamB[1]}
	pairs := make([][2]string, 0, 6)
	for i := range group {
		for j := i + 1; j < len(group); j++ {
			pairs = append(pairs, [2]string{group[i], group[j]})
		}
	}

	return pairs
}

func (history *History) link(a, b string) {
	if history.partners[a] == nil {
		history.partners[a] = make(map[string]struct{})
	}

	history.partners[a][b] = struct{}{}
}
