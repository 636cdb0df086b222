package convert

import (
	"github.com/vantara-labs/units/dims"
	"github.com/vantara-labs/units/unit"
)

// ElectricalKind classifies the physical quantity a per-unit value
// represents, for GenerateBase's P/V/I/R/G relations.
type ElectricalKind int

const (
	KindUnknown ElectricalKind = iota
	KindPower
	KindVoltage
	KindCurrent
	KindImpedance
	KindAdmittance
	KindFrequency
	KindVelocity
)

const (
	defaultBasePower     = 100e6 // 100 MVA, the assumed default
	defaultBaseFrequency = 60    // 60 Hz, the assumed default
	machBaseVelocity     = 341.25
)

// classifyKind infers the electrical (or frequency/velocity) quantity a
// unit's dimensions represent, independent of its per-unit flag.
func classifyKind(d interface {
	Meter() int32
	Second() int32
	Kilogram() int32
	Ampere() int32
}) ElectricalKind {
	m, s, kg, a := d.Meter(), d.Second(), d.Kilogram(), d.Ampere()
	switch {
	case kg == 1 && m == 2 && s == -3 && a == 0:
		return KindPower
	case kg == 1 && m == 2 && s == -3 && a == -1:
		return KindVoltage
	case a == 1 && m == 0 && s == 0 && kg == 0:
		return KindCurrent
	case kg == 1 && m == 2 && s == -3 && a == -2:
		return KindImpedance
	case kg == -1 && m == -2 && s == 3 && a == 2:
		return KindAdmittance
	case s == -1 && m == 0 && kg == 0 && a == 0:
		return KindFrequency
	case m == 1 && s == -1 && kg == 0 && a == 0:
		return KindVelocity
	default:
		return KindUnknown
	}
}

// GenerateBase derives the base value for kind from the supplied power
// and voltage bases, using the standard electrical relations P, V,
// I = P/V, R = V^2/P, G = P/V^2. Frequency and velocity ignore both
// arguments and always return their named defaults (60 Hz, and 341.25 m/s
// as the speed of sound).
func GenerateBase(kind ElectricalKind, basePower, baseVoltage float64) float64 {
	switch kind {
	case KindPower:
		if basePower != 0 {
			return basePower
		}
		return defaultBasePower
	case KindVoltage:
		if baseVoltage != 0 {
			return baseVoltage
		}
		return 1
	case KindCurrent:
		if basePower != 0 && baseVoltage != 0 {
			return basePower / baseVoltage
		}
		return 1
	case KindImpedance:
		if basePower != 0 && baseVoltage != 0 {
			return baseVoltage * baseVoltage / basePower
		}
		return 1
	case KindAdmittance:
		if basePower != 0 && baseVoltage != 0 {
			return basePower / (baseVoltage * baseVoltage)
		}
		return 1
	case KindFrequency:
		return defaultBaseFrequency
	case KindVelocity:
		return machBaseVelocity
	default:
		return 1
	}
}

// convertPerUnit implements the mixed per-unit/absolute bridge: the base
// is derived from a physical kind (power, voltage, current, impedance,
// admittance, frequency, or velocity) — the per-unit side's own kind when
// both sides share a base, the absolute side's kind otherwise — then
// the per-unit value is scaled into the absolute unit's SI-equivalent
// before dividing by the absolute unit's multiplier (or the reverse,
// dividing by the base, when going from absolute to per-unit).
func convertPerUnit(x float64, from, to unit.Precise, basePower, baseVoltage float64) (float64, bool) {
	var pu, abs unit.Precise
	var puIsFrom bool
	if from.Dims.PerUnit() {
		pu, abs, puIsFrom = from, to, true
	} else {
		pu, abs, puIsFrom = to, from, false
	}

	// A per-unit value is a dimensionless ratio, so when the two sides
	// describe different quantities (1 pu of power against an absolute
	// impedance) the base is the absolute side's quantity at the supplied
	// power/voltage pair. Same-quantity conversions keep the per-unit
	// side's own kind.
	kind := classifyKind(pu.Dims)
	if !dims.SameBase(pu.Dims, abs.Dims) {
		kind = classifyKind(abs.Dims)
	}
	if kind == KindUnknown {
		return 0, false
	}
	base := GenerateBase(kind, basePower, baseVoltage)
	if base == 0 {
		return 0, false
	}

	if puIsFrom {
		absoluteSI := x * float64(pu.Multiplier) * base
		return absoluteSI / float64(abs.Multiplier), true
	}
	absoluteSI := x * float64(abs.Multiplier)
	return absoluteSI / base / float64(pu.Multiplier), true
}
