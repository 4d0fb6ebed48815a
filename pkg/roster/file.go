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
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/common"
)

// FilePermissions are the permissions roster files are written with.
const FilePermissions = 0644

// File is the on-disk representation of a roster along with the number of
// rounds it should be scheduled into.
//
//	rounds: 2
//	players:
//	  - name: Alice
//	    games: 2
type File struct {
	Rounds  int     `yaml:"rounds"`
	Players []Entry `yaml:"players"`

	// Scheduling knobs, empty for the defaults.
	Partners string `yaml:"partners,omitempty"`
	Search   string `yaml:"search,omitempty"`
}

// Load reads and decodes the roster file at the given path. The roster is
// not validated.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrap(err, "load roster")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, errors.Wrapf(err, "load roster: decode %s", path)
	}

	return file, nil
}

// Dump encodes the roster file and writes it to the given path, creating
// any missing parent directories.
func (file File) Dump(path string) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return errors.Wrap(err, "dump roster")
	}

	if err := common.TryMkdir(filepath.Dir(path)); err != nil {
		return errors.Wrap(err, "dump roster")
	}

	return errors.Wrap(os.WriteFile(path, data, FilePermissions), "dump roster")
}
