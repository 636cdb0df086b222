package parse

import (
	"strconv"
	"strings"
)

// consumeNumericLiteral scans a decimal or scientific-notation literal
// from the front of s (optional leading '-' or '+', digits, optional '.digits',
// optional [eE][+-]?digits) and returns its value plus how many bytes it
// consumed. ok is false if s does not start with a number.
func consumeNumericLiteral(s string) (value float64, n int, ok bool) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digitsStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	hasIntPart := i > digitsStart
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > i+1 {
			i = j
		} else if !hasIntPart {
			return 0, 0, false
		}
	}
	if !hasIntPart && i == digitsStart {
		return 0, 0, false
	}
	mantissaEnd := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	if mantissaEnd == 0 {
		return 0, 0, false
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, 0, false
	}
	return v, i, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ConsumeLeadingNumber implements the measurement number grammar for callers
// outside this package (measurement.FromString splits a measurement
// literal's leading scalar from its unit before handing the remainder to
// Parser.FromString): a parenthesized arithmetic expression, a decimal or
// scientific literal, or a run of spelled-out English number words,
// tried in that order. rest is whatever text follows, whitespace
// trimmed.
func ConsumeLeadingNumber(s string) (value float64, rest string, ok bool) {
	if val, n, match := consumeParenthesizedExpr(s); match {
		return val, strings.TrimSpace(s[n:]), true
	}
	if val, n, match := consumeNumericLiteral(s); match {
		return val, strings.TrimSpace(s[n:]), true
	}
	if val, n, match := consumeSpelledOutNumber(s); match {
		return val, strings.TrimSpace(s[n:]), true
	}
	return 0, "", false
}

// consumeParenthesizedExpr evaluates a leading "(...)" as an arithmetic
// expression over numeric literals and the operators * / ^, returning its
// value and the number of bytes consumed (including both parens). ok is
// false if s does not start with a balanced, purely-numeric parenthesized
// expression.
func consumeParenthesizedExpr(s string) (value float64, n int, ok bool) {
	if len(s) == 0 || s[0] != '(' {
		return 0, 0, false
	}
	depth := 0
	end := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return 0, 0, false
	}
	inner := s[1:end]
	v, ok := evalNumericExpr(inner)
	if !ok {
		return 0, 0, false
	}
	return v, end + 1, true
}

// evalNumericExpr evaluates a fully-numeric expression over *, /, ^ with
// left-to-right precedence for * and / and right precedence for ^,
// supporting a leading unary '-'. This backs the "leading number" phase's
// parenthesized-expression form and is deliberately not a
// general expression grammar: operands here must all be plain numbers.
func evalNumericExpr(s string) (float64, bool) {
	s = stripSpaces(s)
	if s == "" {
		return 0, false
	}
	terms, ops, ok := splitTopLevel(s, "*/")
	if !ok || len(terms) == 0 {
		return 0, false
	}
	acc, ok := evalPowTerm(terms[0])
	if !ok {
		return 0, false
	}
	for i, op := range ops {
		v, ok := evalPowTerm(terms[i+1])
		if !ok {
			return 0, false
		}
		switch op {
		case '*':
			acc *= v
		case '/':
			if v == 0 {
				return 0, false
			}
			acc /= v
		}
	}
	return acc, true
}

func evalPowTerm(s string) (float64, bool) {
	base, rest, ok := splitOnce(s, '^')
	if !ok {
		v, err := strconv.ParseFloat(s, 64)
		return v, err == nil
	}
	bv, err := strconv.ParseFloat(base, 64)
	if err != nil {
		return 0, false
	}
	ev, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, false
	}
	v := 1.0
	neg := ev < 0
	n := int(ev)
	if neg {
		n = -n
	}
	for i := 0; i < n; i++ {
		v *= bv
	}
	if neg {
		if v == 0 {
			return 0, false
		}
		v = 1 / v
	}
	return v, true
}

// splitOnce finds the last top-level occurrence of sep in s (brackets
// respected) and returns the two sides.
func splitOnce(s string, sep byte) (left, right string, ok bool) {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')', ']', '}':
			depth++
		case '(', '[', '{':
			depth--
		}
		if depth == 0 && s[i] == sep && i > 0 {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

// splitTopLevel splits s on any of the bytes in sepSet that appear at
// bracket depth 0, returning the terms and the separators found between
// them in order.
func splitTopLevel(s string, sepSet string) (terms []string, seps []byte, ok bool) {
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
		if depth == 0 && i > start && strings.IndexByte(sepSet, s[i]) >= 0 {
			terms = append(terms, s[start:i])
			seps = append(seps, s[i])
			start = i + 1
		}
	}
	terms = append(terms, s[start:])
	return terms, seps, true
}

// ones, teens, tens, and scales back the English spelled-out number
// parser.
var numberWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var scaleWords = map[string]float64{
	"hundred": 100, "thousand": 1000, "million": 1e6, "billion": 1e9,
}

// consumeSpelledOutNumber consumes a run of space-separated English
// number words from the front of s (which must still carry its original
// spaces — this must run before spaces are stripped). Returns the
// accumulated value and the number of bytes consumed.
func consumeSpelledOutNumber(s string) (value float64, n int, ok bool) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return 0, 0, false
	}
	var total, current float64
	consumed := 0
	matchedAny := false
	for _, w := range words {
		lw := strings.ToLower(w)
		if v, isNum := numberWords[lw]; isNum {
			current += v
			matchedAny = true
		} else if scale, isScale := scaleWords[lw]; isScale {
			if current == 0 {
				current = 1
			}
			if scale == 100 {
				current *= scale
			} else {
				total += current * scale
				current = 0
			}
			matchedAny = true
		} else {
			break
		}
		consumed += len(w) + 1 // +1 for the separating space
	}
	if !matchedAny {
		return 0, 0, false
	}
	total += current
	if consumed > len(s) {
		consumed = len(s)
	}
	return total, consumed, true
}
