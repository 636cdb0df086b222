// Package serialize implements component G: the precise-unit-to-string
// writer that is parse's approximate inverse. Each step tries a
// progressively less specific rendering — a verbatim dictionary name, an
// inverse hit, a dimensionless prefix or literal, a root probe, an
// equation/custom-unit token, a seed-unit probe, an order-reduced
// rewrite — falling back to the raw exponent expansion, which always
// succeeds.
package serialize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vantara-labs/units/commodity"
	"github.com/vantara-labs/units/custom"
	"github.com/vantara-labs/units/dictionary"
	"github.com/vantara-labs/units/dims"
	"github.com/vantara-labs/units/equation"
	"github.com/vantara-labs/units/matchflags"
	"github.com/vantara-labs/units/numeric"
	"github.com/vantara-labs/units/unit"
)

// Serializer writes unit values back out as text against a dictionary and
// commodity registry. The zero value is not usable; build one with New.
type Serializer struct {
	Dict        *dictionary.Dictionary
	Commodities *commodity.Registry
}

// New builds a Serializer over the given dictionary and commodity
// registry.
func New(dict *dictionary.Dictionary, commodities *commodity.Registry) *Serializer {
	return &Serializer{Dict: dict, Commodities: commodities}
}

// ToString implements to_string(unit, flags) -> text.
func (s *Serializer) ToString(u unit.Precise, flags matchflags.Flags) string {
	if u.IsInvalid() {
		return "invalid"
	}
	if u.IsError() {
		return "error"
	}

	body := s.serializeBody(u, flags, 0)

	name, inverse := "", false
	if u.Commodity != commodity.None && !flags.NoCommodities() {
		if n, ok := s.Commodities.GetName(u.Commodity); ok {
			inverse = strings.HasPrefix(n, "1/")
			name = strings.TrimPrefix(n, "1/")
		}
	}
	return s.attachCommodity(body, name, inverse)
}

// serializeBody renders u without any commodity suffix. depth guards the
// order-reduction step (9) from recursing more than once.
func (s *Serializer) serializeBody(u unit.Precise, flags matchflags.Flags, depth int) string {
	mult := float64(u.Multiplier)

	// Step 1: multiplier special cases.
	if numeric.IsSpecialPrecise(u.Multiplier) {
		suffix := rawDims(u.Dims)
		switch {
		case math.IsNaN(mult):
			return joinMultSuffix("NaN", suffix)
		case math.IsInf(mult, 1):
			return joinMultSuffix("INF", suffix)
		case math.IsInf(mult, -1):
			return joinMultSuffix("-INF", suffix)
		case mult == 0:
			return joinMultSuffix("0", suffix)
		default: // subnormal
			return joinMultSuffix(formatDecimal(mult), suffix)
		}
	}

	// Step 2/3: direct and inverse dictionary hits, with an SI-prefix
	// search folded in so "1000*m" still resolves to "km" rather than
	// falling all the way through to raw expansion. Dimensionless units
	// take only exact hits here; step 4 renders them as a bare prefix.
	if prefix, name, ok := s.findDictName(u); ok && (prefix == "" || !u.Dims.IsDimensionless()) {
		return prefix + name
	}
	if inv := unit.Inv(u); !inv.Dims.IsError() {
		if prefix, name, ok := s.findDictName(inv); ok && (prefix == "" || !inv.Dims.IsDimensionless()) {
			return "1/" + prefix + name
		}
	}

	// Step 4: dimensionless.
	if u.Dims.IsDimensionless() && !u.Dims.EquationFlag() {
		return dimensionlessLiteral(mult) + flagWords(u.Dims)
	}

	// Step 5: square/cube root probe.
	for _, n := range []int32{2, 3} {
		root := unit.Root(u, n)
		if root.Dims.IsError() {
			continue
		}
		if prefix, name, ok := s.findDictName(root); ok {
			return fmt.Sprintf("%s%s^%d", prefix, name, n)
		}
	}

	// Step 6: equation and custom-unit tokens.
	if tok, ok := s.equationOrCustomToken(u); ok {
		return tok
	}

	// Step 9: order reduction, tried once before the probe pass so a
	// genuinely high-order unit (electrical quantities chiefly) gets a
	// chance to land on a shorter rendering through V/W.
	if depth == 0 && dimOrder(u.Dims) >= 4 {
		if rewritten, ok := s.orderReduce(u, flags); ok {
			return rewritten
		}
	}

	// Step 8: seed-unit probe.
	if rendered, ok := s.probePass(u); ok {
		return rendered
	}

	// Step 7: raw expansion, the fallback that always succeeds.
	raw := rawDims(u.Dims)
	if mult == 1 {
		if raw == "" {
			return "1"
		}
		return raw + flagWords(u.Dims)
	}
	lit := dimensionlessLiteral(mult)
	if raw == "" {
		return lit
	}
	return lit + "*" + raw + flagWords(u.Dims)
}

func joinMultSuffix(literal, suffix string) string {
	if suffix == "" {
		return literal
	}
	return literal + "*" + suffix
}

// dimensionlessLiteral renders a bare scalar as an SI prefix symbol when
// it matches one within tolerance, else as a decimal literal.
func dimensionlessLiteral(mult float64) string {
	if symbol, ok := matchPrefix(mult); ok {
		return symbol
	}
	return formatDecimal(mult)
}

func formatDecimal(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// flagWords appends the flag-word suffixes ("pu", "flag", "eflag")
// for any of the per-unit/i/e flags tup carries.
func flagWords(tup dims.Tuple) string {
	var b strings.Builder
	if tup.PerUnit() {
		b.WriteString(" pu")
	}
	if tup.IFlag() {
		b.WriteString(" flag")
	}
	if tup.EFlag() {
		b.WriteString(" eflag")
	}
	return b.String()
}

// findDictName looks for u (or u scaled down by a single SI prefix) in
// the dictionary's reverse table. The empty-prefix case is tried first so
// an exact dictionary entry always wins over a synthesized prefix form.
func (s *Serializer) findDictName(u unit.Precise) (prefix, name string, ok bool) {
	if name, ok := s.Dict.ByUnit(u.ToFast()); ok {
		return "", name, true
	}
	for _, p := range siPrefixSymbols {
		scaled := unit.Precise{Dims: u.Dims, Multiplier: u.Multiplier / numeric.Precise(p.factor)}
		if name, ok := s.Dict.ByUnit(scaled.ToFast()); ok {
			return p.symbol, name, true
		}
	}
	return "", "", false
}

// equationOrCustomToken emits the reserved EQXUN[n]/CXUN[n]/CXCUN[n] forms
// for equation and custom units, with any residual (non-unity) multiplier
// prefixed as a decimal literal.
func (s *Serializer) equationOrCustomToken(u unit.Precise) (string, bool) {
	if t, _, ok := equation.DecodeTuple(u.Dims); ok {
		token := fmt.Sprintf("EQXUN[%d]", int(t))
		return residualPrefix(float64(u.Multiplier)) + token, true
	}
	if n, ok := custom.DecodeUnit(u.Dims); ok {
		return residualPrefix(float64(u.Multiplier)) + fmt.Sprintf("CXUN[%d]", n), true
	}
	if n, ok := custom.DecodeCountUnit(u.Dims); ok {
		return residualPrefix(float64(u.Multiplier)) + fmt.Sprintf("CXCUN[%d]", n), true
	}
	return "", false
}

func residualPrefix(mult float64) string {
	if mult == 1 {
		return ""
	}
	return formatDecimal(mult) + "*"
}

// probePass implements step 8: try multiplying and dividing u by
// each seed unit, looking for a direct dictionary hit on the result or
// its inverse. Among successful probes, the shortest rendered string
// wins; a probe whose own multiplier carries a leftover numeric prefix
// loses to one that doesn't.
func (s *Serializer) probePass(u unit.Precise) (string, bool) {
	type candidate struct {
		text       string
		hasNumeric bool
	}
	var best *candidate

	consider := func(text string, hasNumeric bool) {
		c := candidate{text: text, hasNumeric: hasNumeric}
		if best == nil {
			best = &c
			return
		}
		if best.hasNumeric && !c.hasNumeric {
			best = &c
			return
		}
		if best.hasNumeric == c.hasNumeric && len(c.text) < len(best.text) {
			best = &c
		}
	}

	for _, seedName := range probeSeeds {
		seed, ok := s.Dict.ByName(seedName)
		if !ok {
			continue
		}

		if name, ok := s.Dict.ByUnit(unit.Mul(u, seed).ToFast()); ok {
			consider(name+"/"+seedName, strings.ContainsAny(name, "0123456789.eE"))
		}
		if name, ok := s.Dict.ByUnit(unit.Div(u, seed).ToFast()); ok {
			consider(name+"*"+seedName, strings.ContainsAny(name, "0123456789.eE"))
		}
		inv := unit.Inv(u)
		if name, ok := s.Dict.ByUnit(unit.Mul(inv, seed).ToFast()); ok {
			consider("1/("+name+"/"+seedName+")", true)
		}
	}

	if best == nil {
		return "", false
	}
	return best.text, true
}

// orderReduce implements step 9: for a unit whose dimension order is
// 4 or higher, try pre-multiplying by V, 1/V, W, 1/W and recursively
// serialize whichever candidate drops to the lowest order, undoing the
// pre-multiplication in the printed form.
func (s *Serializer) orderReduce(u unit.Precise, flags matchflags.Flags) (string, bool) {
	v, vOK := s.Dict.ByName("V")
	w, wOK := s.Dict.ByName("W")

	type attempt struct {
		candidate unit.Precise
		undo      string // operator to reapply when printing: "*V", "/V", "*W", "/W"
	}
	var attempts []attempt
	if vOK {
		attempts = append(attempts,
			attempt{unit.Div(u, v), "*V"},
			attempt{unit.Mul(u, v), "/V"},
		)
	}
	if wOK {
		attempts = append(attempts,
			attempt{unit.Div(u, w), "*W"},
			attempt{unit.Mul(u, w), "/W"},
		)
	}

	bestOrder := dimOrder(u.Dims)
	var bestText string
	found := false
	for _, a := range attempts {
		if a.candidate.Dims.IsError() {
			continue
		}
		order := dimOrder(a.candidate.Dims)
		if order >= bestOrder {
			continue
		}
		if prefix, name, ok := s.findDictName(a.candidate); ok {
			bestOrder = order
			bestText = prefix + name + a.undo
			found = true
		}
	}
	return bestText, found
}
