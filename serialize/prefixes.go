package serialize

import "math"

// siPrefixSymbols mirrors the parser's SI prefix table in the
// direction serialization needs: factor -> shortest symbol, searched
// largest-magnitude first so "1e6" prints as "M" rather than "1000k".
var siPrefixSymbols = []struct {
	symbol string
	factor float64
}{
	{"Q", 1e30}, {"R", 1e27}, {"Y", 1e24}, {"Z", 1e21}, {"E", 1e18},
	{"P", 1e15}, {"T", 1e12}, {"G", 1e9}, {"M", 1e6}, {"k", 1e3}, {"h", 1e2},
	{"da", 1e1},
	{"d", 1e-1}, {"c", 1e-2}, {"m", 1e-3}, {"u", 1e-6}, {"n", 1e-9},
	{"p", 1e-12}, {"f", 1e-15}, {"a", 1e-18}, {"z", 1e-21}, {"y", 1e-24},
	{"r", 1e-27}, {"q", 1e-30},
}

// matchPrefix returns the symbol for the SI prefix closest to val within
// float64 tolerance, per step 4's "matches one of the known prefixes
// within float tolerance."
func matchPrefix(val float64) (symbol string, ok bool) {
	for _, p := range siPrefixSymbols {
		if closeEnough(val, p.factor) {
			return p.symbol, true
		}
	}
	return "", false
}

// closeEnough is a relative-tolerance float comparison, looser than
// numeric.EqualPrecise's bit-rounding scheme since a dimensionless
// multiplier arriving here has typically passed through at least one
// division and accumulated ordinary floating-point error.
func closeEnough(a, b float64) bool {
	if a == b {
		return true
	}
	const rel = 1e-9
	d := math.Abs(a - b)
	return d <= rel*math.Max(math.Abs(a), math.Abs(b))
}
