// Package parse implements component F: the recursive-descent heuristic
// string-to-unit parser. Each call tries progressively more
// aggressive rewrites — quick dictionary match, cleanup, leading-number
// extraction, operator splitting, SI prefix stripping, locality/per
// handling, and finally brute-force partitioning — returning a resolved
// unit.Precise or the ErrInvalid sentinel (never a panic; the "invalid
// input" failure mode). Recursion bounds are threaded as plain Go values on an
// internal ctx rather than packed into the flag word's bit-fields, per
// the design note sanctioning "a small integer parameter threaded
// through the call" as an equivalent implementation choice; the public
// matchflags.Flags word still carries every externally meaningful toggle
// (case sensitivity, suppression bits, domain selector).
package parse

import (
	"strings"
	"unicode"

	"github.com/vantara-labs/units/commodity"
	"github.com/vantara-labs/units/dictionary"
	"github.com/vantara-labs/units/dims"
	"github.com/vantara-labs/units/matchflags"
	"github.com/vantara-labs/units/numeric"
	"github.com/vantara-labs/units/unit"
)

// Parser resolves unit strings against a dictionary and commodity
// registry. The zero value is not usable; build one with New.
type Parser struct {
	Dict        *dictionary.Dictionary
	Commodities *commodity.Registry
}

// New builds a Parser over the given dictionary and commodity registry.
func New(dict *dictionary.Dictionary, commodities *commodity.Registry) *Parser {
	return &Parser{Dict: dict, Commodities: commodities}
}

// ctx carries the per-call recursion state that would otherwise live in
// the flag word's high bits: how many nested operator/power
// splits and partitioning attempts remain, and which single-shot
// rewrites (capitalization retry, per-operator substitution) have
// already fired this call tree.
type ctx struct {
	flags          matchflags.Flags
	generalDepth   int
	partitionDepth int
	notFirstPass   bool
	perConsumed    bool
	capRetried     bool
}

// FromString implements unit_from_string(text, flags) -> precise_unit
//. On failure it returns unit.InvalidUnit() and ErrInvalid.
func (p *Parser) FromString(text string, flags matchflags.Flags) (unit.Precise, error) {
	return p.parseCtx(text, ctx{flags: flags})
}

func (p *Parser) parseCtx(raw string, c ctx) (unit.Precise, error) {
	if c.generalDepth > matchflags.MaxGeneralRecursionDepth || c.flags.NoFurtherRecursion() {
		return unit.InvalidUnit(), ErrInvalid
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return unit.InvalidUnit(), ErrInvalid
	}

	// Phase 1: quick match against the verbatim string.
	if u, ok := p.quickMatch(trimmed, c); ok {
		return u, nil
	}

	// Phase 16 (tried early as an unambiguous fixed-prefix token): the
	// numeric custom-index decoders.
	if !c.flags.SkipCodeReplacements() {
		if u, ok := parseCustomCode(trimmed); ok {
			return u, nil
		}
	}

	// Phase 2: clean.
	s := p.clean(trimmed, c)
	if s == "" {
		return unit.InvalidUnit(), ErrInvalid
	}

	nextC := c
	nextC.generalDepth++
	nextC.notFirstPass = true

	// Phase 4 (spelled-out form): "two thousand rpm" must be recognized
	// before spaces are stripped, since word boundaries are all that
	// separates number words from each other and from the unit that
	// follows.
	if val, n, ok := consumeSpelledOutNumber(s); ok {
		rest := strings.TrimSpace(s[n:])
		if rest != "" {
			if ru, err := p.parseCtx(rest, nextC); err == nil && !ru.IsInvalid() {
				return unit.Mul(unit.Precise{Dims: dims.Dimensionless(), Multiplier: numeric.Precise(val)}, ru), nil
			}
		}
	}

	compact := stripSpaces(s)
	if compact == "" {
		return unit.InvalidUnit(), ErrInvalid
	}
	if c.flags.SingleSlashDenominator() {
		compact = normalizeSingleSlash(compact)
	}

	// Phase 1, repeated: cleaning (Unicode/HTML substitution) can itself
	// produce a direct dictionary hit.
	if u, ok := p.quickMatch(compact, c); ok {
		return u, nil
	}

	// Trailing "{name}" after a non-empty base is a commodity suffix,
	// distinct from a bare "{name}" which phase 11 treats as a custom
	// count unit instead.
	if !c.flags.NoCommodities() {
		if base, name, ok := extractCommodityBraces(compact); ok && base != "" {
			if bu, err := p.parseCtx(base, nextC); err == nil && !bu.IsInvalid() {
				code, cerr := p.Commodities.Get(name)
				if cerr == nil {
					bu.Commodity = code
					return bu, nil
				}
			}
		}
	}

	if !validate(compact) {
		return unit.InvalidUnit(), ErrInvalid
	}

	// Phase 4: numeric leading scalar (decimal/scientific literal, or a
	// parenthesized arithmetic expression).
	if u, ok := p.parseLeadingNumber(compact, nextC); ok {
		return u, nil
	}

	// Phase 5: addition.
	if idx, ok := findTopLevelPlus(compact); ok {
		left, right := compact[:idx], compact[idx+1:]
		lu, lerr := p.parseCtx(left, nextC)
		if lerr == nil && !lu.IsInvalid() {
			ru, rerr := p.parseCtx(right, nextC)
			if rerr == nil && !ru.IsInvalid() && lu.SameBase(ru) {
				return unit.Precise{Dims: lu.Dims, Multiplier: lu.Multiplier + ru.Multiplier, Commodity: lu.Commodity}, nil
			}
		}
	}

	// Phase 6: operator split on the last top-level '*' or '/'.
	if idx, op, ok := findLastTopLevel(compact); ok {
		left, right := compact[:idx], compact[idx+1:]
		if lu, lerr := p.parseCtx(left, nextC); lerr == nil && !lu.IsInvalid() {
			if ru, rerr := p.parseCtx(right, nextC); rerr == nil && !ru.IsInvalid() {
				if op == '*' {
					return unit.Mul(lu, ru), nil
				}
				return unit.Div(lu, ru), nil
			}
		}
	}

	// Phase 7: power split.
	if idx, ok := findTopLevelCaret(compact); ok {
		base, expStr := compact[:idx], compact[idx+1:]
		if n, ok := parsePowerExponent(expStr); ok {
			if bu, err := p.parseCtx(base, nextC); err == nil && !bu.IsInvalid() {
				return unit.Pow(bu, n), nil
			}
		}
	}

	// Phase 8: SI prefix.
	if !c.flags.SkipSIPrefixCheck() {
		if factor, rest, ok := siPrefix(compact); ok && rest != "" {
			if ru, err := p.parseCtx(rest, nextC); err == nil && !ru.IsInvalid() {
				return unit.Mul(unit.Precise{Dims: dims.Dimensionless(), Multiplier: numeric.Precise(factor)}, ru), nil
			}
		}
	}

	// Phase 9: capitalization retry. Only tried on the outermost call —
	// matchflags' "not first pass" bit exists precisely to suppress this
	// rewrite once we're already inside a recursive split, where a
	// capitalized token is far more likely to be a deliberate symbol
	// (e.g. "N" for newton) than a sentence-initial capital.
	if !c.notFirstPass && !c.capRetried && len(compact) >= 3 && unicode.IsUpper(rune(compact[0])) {
		retryC := nextC
		retryC.capRetried = true
		lowered := strings.ToLower(compact[:1]) + compact[1:]
		if u, err := p.parseCtx(lowered, retryC); err == nil && !u.IsInvalid() {
			return u, nil
		}
	}

	// Phase 10: spelled-out SI prefix.
	if factor, rest, ok := siWordPrefix(compact); ok && rest != "" {
		if ru, err := p.parseCtx(rest, nextC); err == nil && !ru.IsInvalid() {
			return unit.Mul(unit.Precise{Dims: dims.Dimensionless(), Multiplier: numeric.Precise(factor)}, ru), nil
		}
	}

	// Phase 11: bracketed/braced custom (count) units.
	if u, ok := parseBracketedCustom(compact); ok {
		return u, nil
	}

	// Phase 12: locality tag stripping.
	if !c.flags.NoLocalityModifiers() {
		if stripped, ok := stripLocality(compact); ok {
			if u, err := p.parseCtx(stripped, nextC); err == nil && !u.IsInvalid() {
				return u, nil
			}
		}
	}

	// Phase 13: per-operator retry (guarded against looping back through
	// the same rewrite).
	if !c.flags.NoPerOperators() && !c.perConsumed {
		replaced := replaceWordBoundary(compact, "per", "/")
		if replaced != compact {
			retryC := nextC
			retryC.perConsumed = true
			if u, err := p.parseCtx(replaced, retryC); err == nil && !u.IsInvalid() {
				return u, nil
			}
		}
	}

	// Phase 14: partitioning.
	if u, ok := p.partition(compact, nextC); ok {
		return u, nil
	}

	// Phase 15: commodity-of. This must consult the pre-compacting
	// cleaned string s, not compact: the surrounding spaces in " of " are
	// what marks it as the of-operator rather than a substring occurring
	// inside an ordinary unit name.
	if !c.flags.NoOfOperator() {
		if start, end, ok := findTopLevelOf(s); ok {
			left := strings.TrimSpace(s[:start])
			right := strings.TrimSpace(s[end:])
			if lu, err := p.parseCtx(left, nextC); err == nil && !lu.IsInvalid() {
				code, cerr := p.Commodities.Get(right)
				if cerr == nil {
					lu.Commodity = code
					return lu, nil
				}
			}
		}
	}

	return unit.InvalidUnit(), ErrInvalid
}

// quickMatch implements phase 1: a verbatim dictionary probe, tried
// case-sensitively and then (if the flag is set) case-insensitively.
func (p *Parser) quickMatch(s string, c ctx) (unit.Precise, bool) {
	if u, ok := p.Dict.ByName(s); ok {
		return u, true
	}
	if c.flags.CaseInsensitive() {
		if u, ok := p.Dict.ByName(strings.ToLower(s)); ok {
			return u, true
		}
	}
	return unit.Precise{}, false
}

// parseLeadingNumber implements phase 4's numeric forms: a decimal/
// scientific literal, or a parenthesized arithmetic expression, consumed
// from the front and multiplied onto whatever the remainder resolves to.
// A bare number with no remainder is the dimensionless unit scaled by
// that number.
func (p *Parser) parseLeadingNumber(compact string, c ctx) (unit.Precise, bool) {
	var val float64
	var n int
	var ok bool

	if val, n, ok = consumeParenthesizedExpr(compact); !ok {
		val, n, ok = consumeNumericLiteral(compact)
	}
	if !ok {
		return unit.Precise{}, false
	}

	rest := compact[n:]
	scalar := unit.Precise{Dims: dims.Dimensionless(), Multiplier: numeric.Precise(val)}
	if rest == "" {
		return scalar, true
	}

	ru, err := p.parseCtx(rest, c)
	if err != nil || ru.IsInvalid() {
		return unit.Precise{}, false
	}
	return unit.Mul(scalar, ru), true
}
