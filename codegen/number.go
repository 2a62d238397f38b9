/*
 * fr2nim - A French-keyword toy language transpiled to Nim
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package codegen

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber formats the number the way JavaScript's Number.prototype.toString does:
// the shortest representation that round-trips, in exponent form
// for magnitudes of at least 1e21 or below 1e-6.
func formatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		return "0"
	}

	magnitude := math.Abs(value)
	if magnitude < 1e21 && magnitude >= 1e-6 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	formatted := strconv.FormatFloat(value, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(formatted, "e")

	// Go pads the exponent to two digits, e.g. `1e-07`
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")

	return mantissa + "e" + sign + digits
}
