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
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/history"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/roster"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/schedule"
)

// inputFlags are the flags shared by the commands which take a roster.
type inputFlags struct {
	players  []string
	rounds   int
	partners string
	search   string
}

func (flags *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&flags.players, "player", "p", nil, "Add a player as name:games (repeatable)")
	cmd.Flags().IntVarP(&flags.rounds, "rounds", "r", 0, "Number of games to schedule")
	cmd.Flags().StringVar(&flags.partners, "partners", "", "Pairs to avoid repeating: whole-group or team")
	cmd.Flags().StringVar(&flags.search, "search", "", "Group search: windows or first-four")
}

// resolve builds the roster file described by the command line. Players
// given with --player are added after those of the roster file, and the
// other flags override the file's values when set.
func (flags *inputFlags) resolve(cmd *cobra.Command, args []string) (roster.File, error) {
	var file roster.File
	if len(args) > 0 {
		var err error
		if file, err = roster.Load(args[0]); err != nil {
			return roster.File{}, err
		}
	}

	for _, player := range flags.players {
		entry, err := parsePlayer(player)
		if err != nil {
			return roster.File{}, err
		}

		file.Players = append(file.Players, entry)
	}

	if cmd.Flags().Changed("rounds") {
		file.Rounds = flags.rounds
	}

	if cmd.Flags().Changed("partners") {
		file.Partners = flags.partners
	}

	if cmd.Flags().Changed("search") {
		file.Search = flags.search
	}

	return file, nil
}

// parsePlayer parses a player given as name:games.
func parsePlayer(s string) (roster.Entry, error) {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return roster.Entry{}, fmt.Errorf("invalid player %q: want name:games", s)
	}

	games, err := strconv.Atoi(strings.TrimSpace(s[idx+1:]))
	if err != nil {
		return roster.Entry{}, errors.Wrapf(err, "invalid player %q", s)
	}

	return roster.Entry{Name: s[:idx], Quota: games}, nil
}

// knobs parses the scheduling knobs of a roster file.
func knobs(file roster.File) (history.Policy, schedule.Search, error) {
	policy, err := history.ParsePolicy(file.Partners)
	if err != nil {
		return 0, 0, err
	}

	search, err := schedule.ParseSearch(file.Search)
	if err != nil {
		return 0, 0, err
	}

	return policy, search, nil
}
