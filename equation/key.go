package equation

import "github.com/vantara-labs/units/dims"

// An equation unit's 5-bit type index is packed into the
// radian (3-bit) and count (2-bit) exponent fields, and the equation
// flag marks the tuple as an equation unit. The per-unit flag doubles as
// the "power vs. amplitude/auto" selector Forward/Inverse take as
// isPower, for the handful of types that have both variants (neper, bel,
// dB).

func signExtend(raw uint32, width uint) int32 {
	signBit := uint32(1) << (width - 1)
	if raw&signBit != 0 {
		return int32(raw) - int32(signBit<<1)
	}
	return int32(raw)
}

func truncate(v int32, width uint) uint32 {
	return uint32(v) & ((1 << width) - 1)
}

// EncodeTuple builds the dims.Tuple for the given equation type, with the
// requested power variant, dimensionless otherwise (callers compose the
// resulting tuple with whatever base dimensions the equation unit
// actually measures, e.g. dB of power still carries watt's base).
func EncodeTuple(t Type, isPower bool) (dims.Tuple, error) {
	v := uint32(t) & 0x1F
	radianRaw := v & 0x7
	countRaw := (v >> 3) & 0x3

	return dims.New(0, 0, 0, 0, 0, 0, 0,
		signExtend(radianRaw, 3),
		0,
		signExtend(countRaw, 2),
		isPower, false, false, true)
}

// DecodeTuple extracts the equation type and power-variant flag from a
// tuple previously built by EncodeTuple (or carrying the same packed
// convention). ok is false if tup does not carry the equation flag.
func DecodeTuple(tup dims.Tuple) (t Type, isPower bool, ok bool) {
	if !tup.EquationFlag() {
		return 0, false, false
	}
	radianRaw := truncate(tup.Radian(), 3)
	countRaw := truncate(tup.Count(), 2)
	v := radianRaw | (countRaw << 3)
	return Type(v), tup.PerUnit(), true
}
