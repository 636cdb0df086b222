package serialize

import (
	"fmt"
	"strings"

	"github.com/vantara-labs/units/dims"
)

// baseSymbols is the step 7 fixed display order: meter, kg, s, A, K,
// mol, cd, count, currency, radian.
var baseSymbols = []struct {
	symbol string
	exp    func(dims.Tuple) int32
}{
	{"m", dims.Tuple.Meter},
	{"kg", dims.Tuple.Kilogram},
	{"s", dims.Tuple.Second},
	{"A", dims.Tuple.Ampere},
	{"K", dims.Tuple.Kelvin},
	{"mol", dims.Tuple.Mole},
	{"cd", dims.Tuple.Candela},
	{"count", dims.Tuple.Count},
	{"$", dims.Tuple.Currency},
	{"rad", dims.Tuple.Radian},
}

// rawDims renders tup's base-dimension exponents as "m^a*kg^b*..." with
// every negative exponent collected on the right of a single "/", per
// step 7. A dimensionless tuple renders as the empty string.
func rawDims(tup dims.Tuple) string {
	var num, den []string
	for _, b := range baseSymbols {
		e := b.exp(tup)
		switch {
		case e == 0:
			continue
		case e == 1:
			num = append(num, b.symbol)
		case e == -1:
			den = append(den, b.symbol)
		case e > 0:
			num = append(num, fmt.Sprintf("%s^%d", b.symbol, e))
		default:
			den = append(den, fmt.Sprintf("%s^%d", b.symbol, -e))
		}
	}

	// Two or more denominator terms need parentheses: a bare "x/a*b"
	// reparses left-associatively as (x/a)*b.
	denom := strings.Join(den, "*")
	if len(den) > 1 {
		denom = "(" + denom + ")"
	}

	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, "*")
	case len(num) == 0:
		return "1/" + denom
	default:
		return strings.Join(num, "*") + "/" + denom
	}
}

// dimOrder is the sum of absolute exponent magnitudes, used by step 9's
// order-reduction heuristic and by the probe pass's tie-break.
func dimOrder(tup dims.Tuple) int {
	total := 0
	for _, b := range baseSymbols {
		e := b.exp(tup)
		if e < 0 {
			e = -e
		}
		total += int(e)
	}
	return total
}
