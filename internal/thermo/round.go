package thermo

import (
	"math"
	"strconv"
	"strings"
)

// RoundHalfUp rounds v to the given number of decimal places, ties away from
// zero, working on the shortest decimal form of v so that 2.345 becomes
// 2.35 even though its binary value sits just below.
func RoundHalfUp(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || places < 0 {
		return v
	}
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) <= places {
		return v
	}

	digits := whole + frac[:places]
	roundUp := frac[places] >= '5'

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// Too many digits for an integer; the float is already coarser than
		// the requested precision.
		return v
	}
	if roundUp {
		n++
	}
	if n == 0 {
		return 0
	}
	out := float64(n) / math.Pow10(places)
	if v < 0 {
		out = -out
	}
	return out
}
