// Package currency provides the monetary vocabulary for the currency
// base dimension: ISO-4217 style codes and display symbols that the
// dictionary registers as parseable names, and an Amount pairing a
// scalar with a specific currency for display purposes. Exchange rates
// are out of scope, so every currency maps to the same base unit; the
// Currency value carried by an Amount records identity, not magnitude.
package currency

import (
	"github.com/vantara-labs/units/dims"
	"github.com/vantara-labs/units/unit"
)

// Currency describes one monetary unit: its ISO-4217 code, the symbol
// used when formatting, a display name, and the conventional number of
// minor-unit digits (2 for cent-like subdivisions, 0 where none exist).
type Currency struct {
	Code       string
	Symbol     string
	Name       string
	MinorUnits int
}

// iso is the built-in currency table. Order matters for BySymbol: the
// first entry carrying an ambiguous symbol wins.
var iso = []Currency{
	{Code: "USD", Symbol: "$", Name: "US dollar", MinorUnits: 2},
	{Code: "EUR", Symbol: "€", Name: "euro", MinorUnits: 2},
	{Code: "GBP", Symbol: "£", Name: "pound sterling", MinorUnits: 2},
	{Code: "JPY", Symbol: "¥", Name: "yen", MinorUnits: 0},
	{Code: "CNY", Symbol: "CN¥", Name: "renminbi", MinorUnits: 2},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss franc", MinorUnits: 2},
	{Code: "CAD", Symbol: "C$", Name: "Canadian dollar", MinorUnits: 2},
	{Code: "AUD", Symbol: "A$", Name: "Australian dollar", MinorUnits: 2},
	{Code: "INR", Symbol: "₹", Name: "Indian rupee", MinorUnits: 2},
	{Code: "KRW", Symbol: "₩", Name: "South Korean won", MinorUnits: 0},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian real", MinorUnits: 2},
	{Code: "MXN", Symbol: "Mex$", Name: "Mexican peso", MinorUnits: 2},
}

var byCode = func() map[string]Currency {
	m := make(map[string]Currency, len(iso))
	for _, c := range iso {
		m[c.Code] = c
	}
	return m
}()

// All returns the built-in currency table.
func All() []Currency { return iso }

// ByCode resolves an ISO code like "EUR".
func ByCode(code string) (Currency, bool) {
	c, ok := byCode[code]
	return c, ok
}

// BySymbol resolves a display symbol like "€". Ambiguous symbols resolve
// to the first table entry that carries them.
func BySymbol(symbol string) (Currency, bool) {
	for _, c := range iso {
		if c.Symbol == symbol {
			return c, true
		}
	}
	return Currency{}, false
}

// baseTuple is the currency base dimension (exponent 1, all else zero).
var baseTuple = func() dims.Tuple {
	t, err := dims.New(0, 0, 0, 0, 0, 0, 0, 0, 1, 0, false, false, false, false)
	if err != nil {
		panic(err)
	}
	return t
}()

// Unit returns the dimensional unit every currency shares: currency
// exponent 1, multiplier 1. Rate tables being out of scope, "1 EUR" and
// "1 USD" are the same unit; the distinction lives in Amount.Currency.
func (c Currency) Unit() unit.Precise {
	return unit.Precise{Dims: baseTuple, Multiplier: 1}
}
