package unit

import (
	"math"

	"github.com/vantara-labs/units/commodity"
	"github.com/vantara-labs/units/dims"
	"github.com/vantara-labs/units/numeric"
)

// Mul multiplies two precise units: dims algebra, multipliers
// multiply, commodities combine (Combine = AND when both carry
// one, inherit when only one does). Returns ErrorUnit() if the dimensional
// algebra overflows.
func Mul(a, b Precise) Precise {
	d := dims.Mul(a.Dims, b.Dims)
	if d.IsError() {
		return ErrorUnit()
	}
	return Precise{
		Dims:       d,
		Multiplier: a.Multiplier * b.Multiplier,
		Commodity:  commodity.Combine(a.Commodity, b.Commodity),
	}
}

// Div divides a by b: dims subtract, multipliers divide, commodities
// combine via a&^b.
func Div(a, b Precise) Precise {
	d := dims.Div(a.Dims, b.Dims)
	if d.IsError() {
		return ErrorUnit()
	}
	return Precise{
		Dims:       d,
		Multiplier: a.Multiplier / b.Multiplier,
		Commodity:  commodity.CombineDiv(a.Commodity, b.Commodity),
	}
}

// Inv inverts a: dims negate, multiplier reciprocates, commodity
// complements (nonzero commodities only).
func Inv(a Precise) Precise {
	d := dims.Invert(a.Dims)
	if d.IsError() {
		return ErrorUnit()
	}
	return Precise{
		Dims:       d,
		Multiplier: 1 / a.Multiplier,
		Commodity:  a.Commodity.Invert(),
	}
}

// Pow raises a to the integer power n. Fails with ErrorUnit() if the
// exponent algebra would overflow a packed field. Commodity is left
// unchanged: raising a tagged unit to a power still measures the same
// commodity.
func Pow(a Precise, n int32) Precise {
	d := dims.Pow(a.Dims, n)
	if d.IsError() {
		return ErrorUnit()
	}
	return Precise{
		Dims:       d,
		Multiplier: numeric.Precise(math.Pow(float64(a.Multiplier), float64(n))),
		Commodity:  a.Commodity,
	}
}

// Root takes the integer n-th root of a. Only the SI-mechanical
// subspace (no candela/mole/currency/count, no equation or e-flag) admits
// roots, and an even root of a unit with a negative multiplier is
// an error (it would require a complex result).
func Root(a Precise, n int32) Precise {
	if n == 0 {
		return ErrorUnit()
	}
	if n%2 == 0 && a.Multiplier < 0 {
		return ErrorUnit()
	}
	d, err := dims.Root(a.Dims, n)
	if err != nil {
		return ErrorUnit()
	}
	return Precise{
		Dims:       d,
		Multiplier: numeric.Precise(math.Pow(float64(a.Multiplier), 1/float64(n))),
		Commodity:  a.Commodity,
	}
}
