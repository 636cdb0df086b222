// Package unit implements component C: the unit value, a pair of
// (dimensional exponent tuple, numeric multiplier) with two precision
// variants, closed under multiplication, division, integer power/root,
// and inversion.
package unit

import (
	"math"

	"github.com/vantara-labs/units/commodity"
	"github.com/vantara-labs/units/dims"
	"github.com/vantara-labs/units/numeric"
)

// Fast is the single-precision unit value variant: no commodity field,
// ~6-significant-digit tolerance equality.
type Fast struct {
	Dims       dims.Tuple
	Multiplier numeric.Fast
}

// Precise is the double-precision unit value variant: carries an optional
// commodity tag, ~12-significant-digit tolerance equality.
type Precise struct {
	Dims       dims.Tuple
	Multiplier numeric.Precise
	Commodity  commodity.Code
}

// One is the dimensionless unit with multiplier 1 and no commodity.
var One = Precise{Dims: dims.Dimensionless(), Multiplier: 1}

// FastOne is the Fast analogue of One.
var FastOne = Fast{Dims: dims.Dimensionless(), Multiplier: 1}

// ErrorUnit is the canonical "nonrepresentable result" sentinel: the error
// base tuple with an otherwise ordinary multiplier. Algebra that would
// overflow an exponent field returns this, never a panic.
func ErrorUnit() Precise {
	return Precise{Dims: dims.Error(), Multiplier: 1}
}

// InvalidUnit is the canonical "could not parse" sentinel: the error base
// tuple with a NaN multiplier, distinguishing parse failure from
// arithmetic overflow.
func InvalidUnit() Precise {
	return Precise{Dims: dims.Error(), Multiplier: numeric.Precise(math.NaN())}
}

// IsError reports whether u is the arithmetic-overflow sentinel.
func (u Precise) IsError() bool {
	return u.Dims.IsError() && !math.IsNaN(float64(u.Multiplier))
}

// IsInvalid reports whether u is the parse-failure sentinel.
func (u Precise) IsInvalid() bool {
	return u.Dims.IsError() && math.IsNaN(float64(u.Multiplier))
}

// ToFast discards the commodity tag and narrows the multiplier, producing
// the Fast projection of a Precise unit (used by the serializer's
// dictionary probe, which is keyed on Fast values).
func (u Precise) ToFast() Fast {
	return Fast{Dims: u.Dims, Multiplier: numeric.Fast(u.Multiplier)}
}

// ToPrecise widens a Fast unit into a Precise one with no commodity.
func (u Fast) ToPrecise() Precise {
	return Precise{Dims: u.Dims, Multiplier: numeric.Precise(u.Multiplier)}
}

// Equal compares two Precise units: same packed dims bits (flags
// included), tolerance-equal multipliers, and the same commodity.
func (u Precise) Equal(o Precise) bool {
	return dims.Equal(u.Dims, o.Dims) &&
		numeric.EqualPrecise(u.Multiplier, o.Multiplier) &&
		u.Commodity == o.Commodity
}

// Equal compares two Fast units: same packed dims bits, tolerance-equal
// multipliers.
func (u Fast) Equal(o Fast) bool {
	return dims.Equal(u.Dims, o.Dims) && numeric.EqualFast(u.Multiplier, o.Multiplier)
}

// SameBase reports whether u and o share the same base-dimension
// exponents (ignoring per-unit/i/e/equation flags) — the compatibility
// check used by conversion and by measurement addition.
func (u Precise) SameBase(o Precise) bool { return dims.SameBase(u.Dims, o.Dims) }
