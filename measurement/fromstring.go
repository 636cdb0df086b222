package measurement

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vantara-labs/units/matchflags"
	"github.com/vantara-labs/units/parse"
)

// ParseError reports a measurement string that could not be split into a
// leading scalar and a trailing unit, following currency.ParseOpts's
// ParseError shape.
type ParseError struct {
	Input string
	Inner error
}

func (pe ParseError) Error() string {
	return fmt.Sprintf("failed to parse measurement %q: %s", pe.Input, pe.Inner.Error())
}

// plusMinusMarkers normalizes every spelling of the uncertainty separator
// to a single canonical "+/-" token: the Unicode sign, its HTML
// entity forms, an HTML-tagged "+", and the plain-ASCII "+-"/"\pm".
var plusMinusMarkers = []string{
	"±", "&plusmn;", "&pm;", "&#xB1;", "&#177;",
	"<u>+</u>", `\pm`, "+-",
}

func normalizeUncertaintyMarker(s string) string {
	for _, m := range plusMinusMarkers {
		s = strings.ReplaceAll(s, m, "+/-")
	}
	return s
}

// FromString implements measurement_from_string(text) -> measurement:
// split off the leading scalar via parse.ConsumeLeadingNumber,
// then resolve whatever remains as a unit against p.
func FromString(p *parse.Parser, text string, flags matchflags.Flags) (Measurement, error) {
	text = strings.TrimSpace(text)
	value, rest, ok := parse.ConsumeLeadingNumber(text)
	if !ok {
		return Measurement{}, ParseError{Input: text, Inner: fmt.Errorf("no leading numeric value")}
	}
	u, err := p.FromString(rest, flags)
	if err != nil {
		return Measurement{}, ParseError{Input: text, Inner: err}
	}
	return New(value, u), nil
}

// UncertainFromString implements uncertain_measurement_from_string(text)
// -> uncertain_measurement. It recognizes two notations:
//
//   - explicit: "<value> +/- <uncertainty> <unit>", where the marker may
//     be spelled any of the ways normalizeUncertaintyMarker folds to
//     "+/-", and the uncertainty's own unit (if present) must convert
//     into the value's;
//   - concise: "<value>(<digits>) <unit>", where the parenthesized
//     digits are right-aligned against value's existing decimal places,
//     e.g. "9.80665(23)" -> value 9.80665, uncertainty 0.00023.
func UncertainFromString(p *parse.Parser, text string, flags matchflags.Flags) (UncertainMeasurement, error) {
	text = strings.TrimSpace(text)

	if val, unc, rest, ok := parseConciseUncertainty(text); ok {
		if scale, scaledRest, scaled := parseScientificScale(rest); scaled {
			val *= scale
			unc *= scale
			rest = scaledRest
		}
		u, err := p.FromString(rest, flags)
		if err != nil {
			return UncertainMeasurement{}, ParseError{Input: text, Inner: err}
		}
		m := New(val, u)
		return NewUncertain(val, unc, m), nil
	}

	normalized := normalizeUncertaintyMarker(text)
	left, right, ok := strings.Cut(normalized, "+/-")
	if !ok {
		m, err := FromString(p, text, flags)
		if err != nil {
			return UncertainMeasurement{}, err
		}
		return NewUncertain(m.Value, 0, m), nil
	}

	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	value, valueUnitText, ok := parse.ConsumeLeadingNumber(left)
	if !ok {
		return UncertainMeasurement{}, ParseError{Input: text, Inner: fmt.Errorf("no leading numeric value")}
	}
	// The unit may follow the value ("9.8 m +/- 0.2 m"), the uncertainty
	// ("9.8 +/- 0.2 m"), or both; when both carry one, the uncertainty is
	// converted into the value's unit.
	unc, unitText, ok := parse.ConsumeLeadingNumber(right)
	if !ok {
		return UncertainMeasurement{}, ParseError{Input: text, Inner: fmt.Errorf("no uncertainty value")}
	}
	if valueUnitText == "" {
		valueUnitText = unitText
	}

	u, err := p.FromString(valueUnitText, flags)
	if err != nil {
		return UncertainMeasurement{}, ParseError{Input: text, Inner: err}
	}
	if unitText != "" && unitText != valueUnitText {
		uu, err := p.FromString(unitText, flags)
		if err != nil {
			return UncertainMeasurement{}, ParseError{Input: text, Inner: err}
		}
		unc *= scaleFactor(New(1, uu), New(1, u))
	}

	m := New(value, u)
	return NewUncertain(value, unc, m), nil
}

// parseConciseUncertainty recognizes the "X.XXX(UU)" form: a numeric
// literal immediately followed by a parenthesized run of digits giving
// the uncertainty in the value's own last-digit place. It returns the
// value, the uncertainty, and whatever text follows the closing paren
// (the unit), or ok=false if text does not start with this form.
func parseConciseUncertainty(text string) (value, uncertainty float64, rest string, ok bool) {
	numEnd := 0
	for numEnd < len(text) && (isNumberByte(text[numEnd])) {
		numEnd++
	}
	if numEnd == 0 || numEnd >= len(text) || text[numEnd] != '(' {
		return 0, 0, "", false
	}
	numStr := text[:numEnd]
	closeIdx := strings.IndexByte(text[numEnd:], ')')
	if closeIdx < 0 {
		return 0, 0, "", false
	}
	digits := text[numEnd+1 : numEnd+closeIdx]
	if digits == "" || !allDigits(digits) {
		return 0, 0, "", false
	}

	v, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, 0, "", false
	}

	dotIdx := strings.IndexByte(numStr, '.')
	decimals := 0
	if dotIdx >= 0 {
		decimals = len(numStr) - dotIdx - 1
	}

	uncStr := digits
	if decimals > 0 {
		uncDigits := digits
		if len(uncDigits) < decimals {
			uncDigits = strings.Repeat("0", decimals-len(uncDigits)) + uncDigits
		}
		split := len(uncDigits) - decimals
		uncStr = "0" + uncDigits[:split] + "." + uncDigits[split:]
	}
	u, err := strconv.ParseFloat(uncStr, 64)
	if err != nil {
		return 0, 0, "", false
	}

	return v, u, strings.TrimSpace(text[numEnd+closeIdx+1:]), true
}

// parseScientificScale recognizes a power-of-ten scale written after a
// concise-uncertainty form, "x10^-12" and its ×/*/X spellings, returning
// the scale factor and the remaining text (the unit).
func parseScientificScale(text string) (scale float64, rest string, ok bool) {
	var body string
	for _, prefix := range []string{"x10^", "X10^", "×10^", "*10^"} {
		if after, found := strings.CutPrefix(text, prefix); found {
			body = after
			break
		}
	}
	if body == "" {
		return 0, "", false
	}
	end := 0
	if end < len(body) && (body[end] == '-' || body[end] == '+') {
		end++
	}
	digitStart := end
	for end < len(body) && body[end] >= '0' && body[end] <= '9' {
		end++
	}
	if end == digitStart {
		return 0, "", false
	}
	n, err := strconv.Atoi(body[:end])
	if err != nil {
		return 0, "", false
	}
	return math.Pow(10, float64(n)), strings.TrimSpace(body[end:]), true
}

func isNumberByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == '-' || b == '+' || b == 'e' || b == 'E'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
