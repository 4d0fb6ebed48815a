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

package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

var (
	// Directory is where matchup keeps its state between invocations.
	Directory = filepath.Join(xdg.StateHome, "matchup")

	// LastInputsFile is the roster file of the last generated schedule,
	// which is what the regenerate command re-runs.
	LastInputsFile = filepath.Join(Directory, "last.yaml")
)

// TryMkdir creates the given directory if it does not exist yet.
func TryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}

// SetDirectory moves the state directory, and every file inside it, to
// the given path.
func SetDirectory(dir string) {
	Directory = dir
	LastInputsFile = filepath.Join(Directory, "last.yaml")
}
