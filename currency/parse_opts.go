package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOpts carries the separator conventions used when reading a
// monetary string: the thousands grouping rune and the decimal rune.
type ParseOpts struct {
	thousands rune
	decimal   rune
}

// DefaultParseOpts uses the en-US convention: ',' grouping, '.' decimal.
var DefaultParseOpts *ParseOpts = new(ParseOpts).Init(',', '.')

func (po *ParseOpts) Init(thousands, decimal rune) *ParseOpts {
	po.thousands = thousands
	po.decimal = decimal
	return po
}

// ParseError reports a monetary string that could not be read.
type ParseError struct {
	Input string
	Inner error
}

func (pe ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %s", pe.Input, pe.Inner.Error())
}

// ParseAmount reads a monetary string: a decimal number optionally
// preceded or followed by a currency symbol or ISO code, e.g. "$12.50",
// "12.50 USD", "EUR 9,99" (with the matching ParseOpts), "-£5". A string
// naming no currency is denominated in USD.
func ParseAmount(text string, po *ParseOpts) (Amount, error) {
	if po == nil {
		po = DefaultParseOpts
	}
	s := strings.TrimSpace(text)
	if s == "" {
		return Amount{}, ParseError{Input: text, Inner: fmt.Errorf("empty string")}
	}

	cur, ok := ByCode("USD")
	if !ok {
		panic("USD missing from currency table")
	}

	if c, rest, found := trimCurrencyToken(s); found {
		cur = c
		s = strings.TrimSpace(rest)
	}

	if po.thousands != 0 {
		s = strings.ReplaceAll(s, string(po.thousands), "")
	}
	if po.decimal != '.' {
		s = strings.ReplaceAll(s, string(po.decimal), ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Amount{}, ParseError{Input: text, Inner: err}
	}
	return Amount{Value: v, Currency: cur}, nil
}

// trimCurrencyToken strips a leading or trailing currency symbol or ISO
// code from s, returning the matched currency and the remainder. A
// leading sign survives in the remainder ("-£5" -> GBP, "-5").
func trimCurrencyToken(s string) (Currency, string, bool) {
	sign := ""
	body := s
	if strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+") {
		sign, body = body[:1], body[1:]
	}
	for _, c := range All() {
		if rest, found := strings.CutPrefix(body, c.Symbol); found {
			return c, sign + rest, true
		}
		if rest, found := strings.CutPrefix(body, c.Code); found {
			return c, sign + rest, true
		}
	}
	for _, c := range All() {
		if rest, found := strings.CutSuffix(body, c.Symbol); found {
			return c, sign + rest, true
		}
		if rest, found := strings.CutSuffix(body, c.Code); found {
			return c, sign + rest, true
		}
	}
	return Currency{}, s, false
}
