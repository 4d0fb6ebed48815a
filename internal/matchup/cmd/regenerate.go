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
	"errors"
	"io/fs"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/common"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/roster"
)

// matchup regenerate
func Regenerate() *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate",
		Short: "Shuffle a new schedule from the last inputs",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`regenerate runs the scheduler again on the roster last
			passed to generate. The schedule is built from scratch with new
			randomness, so it will usually differ from the previous one.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := roster.Load(common.LastInputsFile)
			if errors.Is(err, fs.ErrNotExist) {
				return errors.New("regenerate: no previous inputs, run generate first")
			}
			if err != nil {
				return err
			}

			return run(cmd, file, nil)
		},
	}
}
