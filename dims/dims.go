// Package dims implements the fixed-width, bit-packed dimensional exponent
// tuple that is the base representation for every unit value in the
// library. See the field layout table in the module documentation: ten
// signed exponents over the base dimensions plus four boolean flags,
// packed into 32 bits.
package dims

// Tuple is the packed base-dimension exponent vector plus flags. The zero
// value is the dimensionless tuple (all exponents zero, all flags clear).
type Tuple struct {
	bits uint32
}

// field describes one signed exponent field's bit offset and width within
// the packed representation.
type field struct {
	offset uint
	width  uint
}

var (
	fMeter    = field{0, 4}
	fSecond   = field{4, 4}
	fKilogram = field{8, 3}
	fAmpere   = field{11, 3}
	fCandela  = field{14, 2}
	fKelvin   = field{16, 3}
	fMole     = field{19, 2}
	fRadian   = field{21, 3}
	fCurrency = field{24, 2}
	fCount    = field{26, 2}
)

const (
	bitPerUnit  = 28
	bitIFlag    = 29
	bitEFlag    = 30
	bitEquation = 31
)

// min/max for each signed field, derived from width: range is
// [-2^(width-1), 2^(width-1)-1].
func (f field) min() int32 { return -(1 << (f.width - 1)) }
func (f field) max() int32 { return (1 << (f.width - 1)) - 1 }
func (f field) mask() uint32 { return (uint32(1) << f.width) - 1 }

func (f field) get(bits uint32) int32 {
	raw := (bits >> f.offset) & f.mask()
	signBit := uint32(1) << (f.width - 1)
	if raw&signBit != 0 {
		// sign-extend
		return int32(raw) - int32(signBit<<1)
	}
	return int32(raw)
}

func (f field) set(bits uint32, v int32) uint32 {
	bits &^= f.mask() << f.offset
	bits |= (uint32(v) & f.mask()) << f.offset
	return bits
}

// New builds a Tuple from explicit field values, returning ErrOutOfRange
// if any exponent falls outside its packed field's range.
func New(meter, second, kilogram, ampere, candela, kelvin, mole, radian, currency, count int32, perUnit, iFlag, eFlag, equationFlag bool) (Tuple, error) {
	vals := []struct {
		f field
		v int32
	}{
		{fMeter, meter}, {fSecond, second}, {fKilogram, kilogram}, {fAmpere, ampere},
		{fCandela, candela}, {fKelvin, kelvin}, {fMole, mole}, {fRadian, radian},
		{fCurrency, currency}, {fCount, count},
	}

	var bits uint32
	for _, fv := range vals {
		if fv.v < fv.f.min() || fv.v > fv.f.max() {
			return Tuple{}, ErrOutOfRange
		}
		bits = fv.f.set(bits, fv.v)
	}

	if perUnit {
		bits |= 1 << bitPerUnit
	}
	if iFlag {
		bits |= 1 << bitIFlag
	}
	if eFlag {
		bits |= 1 << bitEFlag
	}
	if equationFlag {
		bits |= 1 << bitEquation
	}

	return Tuple{bits}, nil
}

// FromBits wraps a raw packed value. It does not validate the flag bits
// beyond what the 32-bit layout already constrains structurally; callers
// that build bits from outside this package (equation/custom encoders)
// are trusted to respect field widths.
func FromBits(bits uint32) Tuple { return Tuple{bits} }

// Bits returns the raw packed representation.
func (t Tuple) Bits() uint32 { return t.bits }

func (t Tuple) Meter() int32    { return fMeter.get(t.bits) }
func (t Tuple) Second() int32   { return fSecond.get(t.bits) }
func (t Tuple) Kilogram() int32 { return fKilogram.get(t.bits) }
func (t Tuple) Ampere() int32   { return fAmpere.get(t.bits) }
func (t Tuple) Candela() int32  { return fCandela.get(t.bits) }
func (t Tuple) Kelvin() int32   { return fKelvin.get(t.bits) }
func (t Tuple) Mole() int32     { return fMole.get(t.bits) }
func (t Tuple) Radian() int32   { return fRadian.get(t.bits) }
func (t Tuple) Currency() int32 { return fCurrency.get(t.bits) }
func (t Tuple) Count() int32    { return fCount.get(t.bits) }

func (t Tuple) PerUnit() bool      { return t.bits&(1<<bitPerUnit) != 0 }
func (t Tuple) IFlag() bool        { return t.bits&(1<<bitIFlag) != 0 }
func (t Tuple) EFlag() bool        { return t.bits&(1<<bitEFlag) != 0 }
func (t Tuple) EquationFlag() bool { return t.bits&(1<<bitEquation) != 0 }

// withFlags returns a copy of t with the four flag bits replaced.
func (t Tuple) withFlags(perUnit, iFlag, eFlag, equationFlag bool) Tuple {
	bits := t.bits &^ (uint32(0xF) << bitPerUnit)
	if perUnit {
		bits |= 1 << bitPerUnit
	}
	if iFlag {
		bits |= 1 << bitIFlag
	}
	if eFlag {
		bits |= 1 << bitEFlag
	}
	if equationFlag {
		bits |= 1 << bitEquation
	}
	return Tuple{bits}
}

// errorBits holds the packed canonical error tuple: each field at its
// signed minimum, all four flags set.
var errorBits = func() uint32 {
	t, err := New(
		fMeter.min(), fSecond.min(), fKilogram.min(), fAmpere.min(),
		fCandela.min(), fKelvin.min(), fMole.min(), fRadian.min(),
		fCurrency.min(), fCount.min(),
		true, true, true, true,
	)
	if err != nil {
		panic("dims: error tuple construction failed: " + err.Error())
	}
	return t.bits
}()

// Error returns the canonical error tuple: every exponent saturated at its
// signed minimum, all four flags set.
func Error() Tuple { return Tuple{errorBits} }

// IsError reports whether t is the canonical error tuple.
func (t Tuple) IsError() bool { return t.bits == errorBits }

// Dimensionless returns the zero tuple: no dimensions, no flags.
func Dimensionless() Tuple { return Tuple{} }

// IsDimensionless reports whether t carries no base-dimension exponents,
// ignoring the per-unit/i/e/equation flags (those participate in equality
// but not in "same base" comparisons).
func (t Tuple) IsDimensionless() bool {
	const dimMask = uint32(1)<<28 - 1 // all ten exponent fields, flags cleared
	return t.bits&dimMask == 0
}

// SameBase reports whether a and b carry identical base-dimension
// exponents, ignoring the per-unit/i/e/equation flags.
func SameBase(a, b Tuple) bool {
	const dimMask = uint32(1)<<28 - 1
	return a.bits&dimMask == b.bits&dimMask
}

// Equal compares the full packed representation, flags included.
func Equal(a, b Tuple) bool { return a.bits == b.bits }
