// Package convert implements the conversion algorithm: the
// numeric bridge between two unit.Precise values that share, or can be
// reconciled to, the same dimensional base.
package convert

import (
	"math"

	"github.com/vantara-labs/units/dims"
	"github.com/vantara-labs/units/equation"
	"github.com/vantara-labs/units/numeric"
	"github.com/vantara-labs/units/unit"
)

// Avogadro is the constant used to bridge mole <-> count exponent
// mismatches.
const Avogadro = 6.02214076e23

// TwoPi bridges radian <-> count(rotation) exponent mismatches.
const TwoPi = 2 * math.Pi

// fahrenheitSlope is the multiplier that marks a Kelvin-base, e-flagged
// unit as Fahrenheit rather than Celsius (step 2: "matches the degF
// literal exactly by multiplier").
const fahrenheitSlope = 5.0 / 9.0

// Convert implements convert(x, from, to): it returns the converted
// scalar, or math.NaN() for an invalid conversion (mismatched,
// unreconcilable bases).
func Convert(x float64, from, to unit.Precise) float64 {
	return ConvertWithBase(x, from, to, 0, 0)
}

// ConvertWithBase is the four-argument form accepting a basePower/
// baseVoltage pair for power-system per-unit conversions. Pass 0,
// 0 when no explicit base applies; GenerateBase derives one from other
// electrical quantities when needed.
func ConvertWithBase(x float64, from, to unit.Precise, basePower, baseVoltage float64) float64 {
	// Step 1: default unit or exact equality.
	if from.Equal(unit.One) || to.Equal(unit.One) || from.Equal(to) {
		return x
	}

	// Step 2: temperature branch.
	if isAffineTemperature(from) || isAffineTemperature(to) {
		if from.Dims.Kelvin() == 0 || to.Dims.Kelvin() == 0 {
			return math.NaN()
		}
		kelvin := toKelvin(x, from)
		return fromKelvin(kelvin, to)
	}

	// Step 3: equation branch.
	fromEq, fromPower, fromOK := equation.DecodeTuple(from.Dims)
	toEq, toPower, toOK := equation.DecodeTuple(to.Dims)
	if fromOK || toOK {
		if !sameMechanicalBase(from.Dims, to.Dims) {
			return math.NaN()
		}
		linear := x
		if fromOK {
			linear = equation.Forward(fromEq, x, fromPower)
		}
		linear *= float64(from.Multiplier) / float64(to.Multiplier)
		if !toOK {
			return linear
		}
		return equation.Inverse(toEq, linear, toPower)
	}

	// Step 4: identical base.
	if dims.SameBase(from.Dims, to.Dims) && from.Dims.PerUnit() == to.Dims.PerUnit() {
		return x * float64(from.Multiplier) / float64(to.Multiplier)
	}

	// Step 5: per-unit branch.
	if from.Dims.PerUnit() != to.Dims.PerUnit() {
		if v, ok := convertPerUnit(x, from, to, basePower, baseVoltage); ok {
			return v
		}
		return math.NaN()
	}

	// Step 6: counting reconciliation (radian<->count, mole<->count).
	if v, ok := reconcileCounting(x, from, to); ok {
		return v
	}

	// Step 7: reciprocal base.
	if dims.SameBase(dims.Invert(from.Dims), to.Dims) {
		return float64(to.Multiplier) / (x * float64(from.Multiplier))
	}

	// Step 8: inter-domain SCF/SCM bridging.
	if v, ok := convertSCFSCM(x, from, to); ok {
		return v
	}

	// Step 9: invalid.
	return math.NaN()
}

func isAffineTemperature(u unit.Precise) bool {
	return u.Dims.Kelvin() != 0 && u.Dims.EFlag()
}

func isFahrenheit(u unit.Precise) bool {
	return isAffineTemperature(u) && numeric.EqualPrecise(u.Multiplier, fahrenheitSlope)
}

func toKelvin(x float64, u unit.Precise) float64 {
	if !u.Dims.EFlag() {
		return x * float64(u.Multiplier)
	}
	if isFahrenheit(u) {
		return (x-32)*5.0/9.0 + 273.15
	}
	return x*float64(u.Multiplier) + 273.15
}

func fromKelvin(kelvin float64, u unit.Precise) float64 {
	if !u.Dims.EFlag() {
		return kelvin / float64(u.Multiplier)
	}
	if isFahrenheit(u) {
		return (kelvin-273.15)*9.0/5.0 + 32
	}
	return (kelvin - 273.15) / float64(u.Multiplier)
}

// sameMechanicalBase compares two tuples ignoring radian, count, mole,
// and all four flag bits — the comparison step 3 calls for when
// deciding whether an equation unit's base is compatible with its
// conversion target.
func sameMechanicalBase(a, b dims.Tuple) bool {
	return a.Meter() == b.Meter() &&
		a.Second() == b.Second() &&
		a.Kilogram() == b.Kilogram() &&
		a.Ampere() == b.Ampere() &&
		a.Kelvin() == b.Kelvin() &&
		a.Candela() == b.Candela() &&
		a.Currency() == b.Currency()
}

// reconcileCounting handles step 6: if from and to differ only in
// their radian or mole exponent relative to count, bridge the gap with
// the corresponding power of 2*pi (radian<->count, i.e. rotations) or
// Avogadro's number (mole<->count).
func reconcileCounting(x float64, from, to unit.Precise) (float64, bool) {
	fd, td := from.Dims, to.Dims
	base := x * float64(from.Multiplier) / float64(to.Multiplier)

	if fd.Meter() == td.Meter() && fd.Second() == td.Second() && fd.Kilogram() == td.Kilogram() &&
		fd.Ampere() == td.Ampere() && fd.Candela() == td.Candela() && fd.Currency() == td.Currency() &&
		fd.Kelvin() == td.Kelvin() && fd.Mole() == td.Mole() {
		if diff := td.Radian() - fd.Radian(); diff != 0 && td.Count()-fd.Count() == -diff {
			return base * math.Pow(TwoPi, float64(diff)), true
		}
	}
	if fd.Meter() == td.Meter() && fd.Second() == td.Second() && fd.Kilogram() == td.Kilogram() &&
		fd.Ampere() == td.Ampere() && fd.Candela() == td.Candela() && fd.Currency() == td.Currency() &&
		fd.Kelvin() == td.Kelvin() && fd.Radian() == td.Radian() {
		if diff := td.Mole() - fd.Mole(); diff != 0 && td.Count()-fd.Count() == -diff {
			return base * math.Pow(Avogadro, float64(-diff)), true
		}
	}
	return 0, false
}

// scfPerJoule is the fixed SCF (standard cubic foot) <-> energy bridging
// factor used when context implies natural-gas standard conditions: one
// SCF of natural gas carries approximately 1.0926e6 joules (roughly 1036
// BTU). This is a single named constant rather than a context-sensitive
// table.
const scfPerJoule = 1.0926e6

// cubicFoot is one standard cubic foot expressed in cubic meters.
const cubicFoot = 0.028316846592

func convertSCFSCM(x float64, from, to unit.Precise) (float64, bool) {
	fromIsVolume := from.Dims.Meter() == 3 && from.Dims.Second() == 0 && from.Dims.Kilogram() == 0
	toIsEnergy := to.Dims.Meter() == 2 && to.Dims.Second() == -2 && to.Dims.Kilogram() == 1
	if fromIsVolume && toIsEnergy {
		return x * float64(from.Multiplier) / cubicFoot * scfPerJoule / float64(to.Multiplier), true
	}
	fromIsEnergy := from.Dims.Meter() == 2 && from.Dims.Second() == -2 && from.Dims.Kilogram() == 1
	toIsVolume := to.Dims.Meter() == 3
	if fromIsEnergy && toIsVolume {
		return x * float64(from.Multiplier) / scfPerJoule * cubicFoot / float64(to.Multiplier), true
	}
	return 0, false
}
