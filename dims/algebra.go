package dims

import "github.com/vantara-labs/units/imath"

func allFields() [10]field {
	return [10]field{fMeter, fSecond, fKilogram, fAmpere, fCandela, fKelvin, fMole, fRadian, fCurrency, fCount}
}

func (f field) fits(v int32) bool { return imath.InRange(v, f.min(), f.max()) }

// MulWouldOverflow reports whether Mul(a, b) would saturate any exponent
// field, without mutating either operand.
func MulWouldOverflow(a, b Tuple) bool {
	for _, f := range allFields() {
		if !f.fits(f.get(a.bits) + f.get(b.bits)) {
			return true
		}
	}
	return false
}

// Mul adds the two tuples' exponents field-by-field, ORs the per-unit and
// equation flags, and XORs the i and e flags. Returns Error() if any field
// would overflow.
func Mul(a, b Tuple) Tuple {
	if MulWouldOverflow(a, b) {
		return Error()
	}

	bits := uint32(0)
	for _, f := range allFields() {
		bits = f.set(bits, f.get(a.bits)+f.get(b.bits))
	}

	t := Tuple{bits}
	return t.withFlags(
		a.PerUnit() || b.PerUnit(),
		a.IFlag() != b.IFlag(),
		a.EFlag() != b.EFlag(),
		a.EquationFlag() || b.EquationFlag(),
	)
}

// DivWouldOverflow reports whether Div(a, b) would saturate any exponent
// field.
func DivWouldOverflow(a, b Tuple) bool {
	for _, f := range allFields() {
		if !f.fits(f.get(a.bits) - f.get(b.bits)) {
			return true
		}
	}
	return false
}

// Div subtracts b's exponents from a's field-by-field, ORs the per-unit
// and equation flags, and XORs the i and e flags. Returns Error() if any
// field would overflow.
func Div(a, b Tuple) Tuple {
	if DivWouldOverflow(a, b) {
		return Error()
	}

	bits := uint32(0)
	for _, f := range allFields() {
		bits = f.set(bits, f.get(a.bits)-f.get(b.bits))
	}

	t := Tuple{bits}
	return t.withFlags(
		a.PerUnit() || b.PerUnit(),
		a.IFlag() != b.IFlag(),
		a.EFlag() != b.EFlag(),
		a.EquationFlag() || b.EquationFlag(),
	)
}

// InvertWouldOverflow reports whether Invert(a) would saturate any
// exponent field. This can happen because the packed fields are
// asymmetric two's-complement ranges: negating the minimum value of a
// field overflows its maximum.
func InvertWouldOverflow(a Tuple) bool {
	for _, f := range allFields() {
		if !f.fits(-f.get(a.bits)) {
			return true
		}
	}
	return false
}

// Invert negates every exponent and preserves all four flags. Returns
// Error() if any field would overflow.
func Invert(a Tuple) Tuple {
	if InvertWouldOverflow(a) {
		return Error()
	}

	bits := uint32(0)
	for _, f := range allFields() {
		bits = f.set(bits, -f.get(a.bits))
	}

	t := Tuple{bits}
	return t.withFlags(a.PerUnit(), a.IFlag(), a.EFlag(), a.EquationFlag())
}

// PowWouldOverflow reports whether Pow(a, n) would saturate any exponent
// field.
func PowWouldOverflow(a Tuple, n int32) bool {
	for _, f := range allFields() {
		if !f.fits(f.get(a.bits) * n) {
			return true
		}
	}
	return false
}

// Pow multiplies every exponent by n. On even n the i and e flags are
// cleared. A reserved rule handles "root-Hertz" units: when both the i and
// e flags are set and the second exponent is nonzero and n is even, an
// additional term is added to the resulting second exponent so that
// repeated squaring of a root-Hertz unit lands back on a Hertz power.
// Returns Error() if any field would overflow.
func Pow(a Tuple, n int32) Tuple {
	if PowWouldOverflow(a, n) {
		return Error()
	}

	origSecond := a.Second()
	bits := uint32(0)
	for _, f := range allFields() {
		bits = f.set(bits, f.get(a.bits)*n)
	}

	even := n%2 == 0
	iFlag, eFlag := a.IFlag(), a.EFlag()

	if iFlag && eFlag && origSecond != 0 && even {
		adj := int32(-9)
		if origSecond < 0 || n < 0 {
			adj = 9
		}
		newSecond := fSecond.get(bits) + (n/2)*adj
		if !fSecond.fits(newSecond) {
			return Error()
		}
		bits = fSecond.set(bits, newSecond)
	}

	if even {
		iFlag, eFlag = false, false
	}

	t := Tuple{bits}
	return t.withFlags(a.PerUnit(), iFlag, eFlag, a.EquationFlag())
}

// Rootable reports whether Root(a, n) can succeed: every exponent must be
// evenly divisible by n, and candela, mole, currency, count, the equation
// flag, and the e-flag must all be zero/clear — only the SI-mechanical
// subspace admits roots.
func Rootable(a Tuple, n int32) bool {
	if n == 0 {
		return false
	}
	if a.Candela() != 0 || a.Mole() != 0 || a.Currency() != 0 || a.Count() != 0 {
		return false
	}
	if a.EquationFlag() || a.EFlag() {
		return false
	}
	for _, f := range allFields() {
		if !imath.DivisibleBy(f.get(a.bits), n) {
			return false
		}
	}
	return true
}

// Root integer-divides every exponent by n. Returns ErrNotRootable, with
// Error() as the accompanying tuple, when Rootable(a, n) is false.
func Root(a Tuple, n int32) (Tuple, error) {
	if !Rootable(a, n) {
		return Error(), ErrNotRootable
	}

	bits := uint32(0)
	for _, f := range allFields() {
		bits = f.set(bits, f.get(a.bits)/n)
	}

	t := Tuple{bits}
	return t.withFlags(a.PerUnit(), a.IFlag(), false, false), nil
}
