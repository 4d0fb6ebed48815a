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
	"regexp"
	"strconv"
)

var chunkRegexp = regexp.MustCompile(`(\d+|\D+)`)

// NaturalLess reports whether a sorts before b in natural order, where runs
// of digits are compared by their numeric value: "Player 2" < "Player 10".
func NaturalLess(a, b string) bool {
	chunksA := chunkRegexp.FindAllString(a, -1)
	chunksB := chunkRegexp.FindAllString(b, -1)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		ca, cb := chunksA[i], chunksB[i]
		if ca == cb {
			continue
		}

		// If both chunks are numeric, compare them as integers.
		na, errA := strconv.Atoi(ca)
		nb, errB := strconv.Atoi(cb)
		if errA == nil && errB == nil && na != nb {
			return na < nb
		}

		return ca < cb
	}

	// One is a prefix of the other, so the shorter one goes first.
	return len(chunksA) < len(chunksB)
}
