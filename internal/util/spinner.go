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

package util

import (
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// SpinnerCharSet is the index of the spinner.CharSets used.
const SpinnerCharSet = 11

var (
	spinnerOnce sync.Once
	working     *spinner.Spinner
)

func theSpinner() *spinner.Spinner {
	spinnerOnce.Do(func() {
		working = spinner.New(
			spinner.CharSets[SpinnerCharSet],
			100*time.Millisecond,
			spinner.WithWriter(os.Stderr),
		)
	})

	return working
}

// StartSpinner starts the ~working~ spinner with the given suffix. It
// stays quiet while trace logging is enabled, since the spinner would
// garble the log output.
func StartSpinner(suffix string) {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	s := theSpinner()
	s.Suffix = " " + suffix
	s.Start()
}

// PauseSpinner stops the spinner if it is running.
func PauseSpinner() {
	theSpinner().Stop()
}
