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

package stats

import "math"

// Confidence is the two-sided confidence level of the reported intervals.
const Confidence = 0.95

// Proportion estimates the underlying rate of an event seen the given
// number of times in the given number of trials, along with its Wilson
// score interval at the Confidence level.
func Proportion(successes, trials int) (lower float64, p float64, upper float64) {
	if trials <= 0 {
		return 0, 0, 1
	}

	n := float64(trials)
	p = float64(successes) / n // measured rate

	z := phiInv(1 - (1-Confidence)/2)
	z2 := z * z

	centre := (p + z2/(2*n)) / (1 + z2/n)
	margin := z / (1 + z2/n) * math.Sqrt(p*(1-p)/n+z2/(4*n*n))

	// the interval always contains p; min and max only absorb rounding
	return math.Min(p, clamp(centre-margin)), p, math.Max(p, clamp(centre+margin))
}

// Mean returns the average of the given values, or zero if there are none.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, value := range values {
		sum += value
	}

	return sum / float64(len(values))
}

func clamp(x float64) float64 {
	return math.Min(1, math.Max(0, x))
}

// phiInv is the quantile function of the standard normal distribution.
func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
