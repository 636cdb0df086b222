package dictionary

import (
	"github.com/vantara-labs/units/dims"
	"github.com/vantara-labs/units/numeric"
	"github.com/vantara-labs/units/unit"
)

// dim builds a dims.Tuple from the ten base exponents, panicking on
// overflow: every literal below fits comfortably inside the packed field
// widths, so a panic here means a typo in this table, not a runtime
// condition callers need to handle.
func dim(meter, second, kilogram, ampere, candela, kelvin, mole, radian, currency, count int32) dims.Tuple {
	t, err := dims.New(meter, second, kilogram, ampere, candela, kelvin, mole, radian, currency, count,
		false, false, false, false)
	if err != nil {
		panic(err)
	}
	return t
}

// dimf is dim with the four flag bits exposed, for the handful of
// entries (per-unit and equation-flagged units) that need them.
func dimf(meter, second, kilogram, ampere, candela, kelvin, mole, radian, currency, count int32,
	perUnit, iFlag, eFlag, equationFlag bool) dims.Tuple {
	t, err := dims.New(meter, second, kilogram, ampere, candela, kelvin, mole, radian, currency, count,
		perUnit, iFlag, eFlag, equationFlag)
	if err != nil {
		panic(err)
	}
	return t
}

func u(mult float64, d dims.Tuple) unit.Precise {
	return unit.Precise{Dims: d, Multiplier: numeric.Precise(mult)}
}

// builtinTable is a representative, not exhaustive, built-in dictionary
// spanning SI base and derived units, US customary/imperial, cgs,
// nautical, typographic, data, and a handful of astronomical and textile
// units. Breadth over completeness: a full general-purpose table would run
// to several thousand entries; this is the subset that exercises
// every family the conversion and parsing algorithms need to demonstrate
// against (recorded as a scope decision in DESIGN.md).
var builtinTable = map[string]unit.Precise{
	// SI base
	"m":   u(1, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"s":   u(1, dim(0, 1, 0, 0, 0, 0, 0, 0, 0, 0)),
	"kg":  u(1, dim(0, 0, 1, 0, 0, 0, 0, 0, 0, 0)),
	"g":   u(0.001, dim(0, 0, 1, 0, 0, 0, 0, 0, 0, 0)),
	"A":   u(1, dim(0, 0, 0, 1, 0, 0, 0, 0, 0, 0)),
	"cd":  u(1, dim(0, 0, 0, 0, 1, 0, 0, 0, 0, 0)),
	"K":   u(1, dim(0, 0, 0, 0, 0, 1, 0, 0, 0, 0)),
	"mol": u(1, dim(0, 0, 0, 0, 0, 0, 1, 0, 0, 0)),
	"rad": u(1, dim(0, 0, 0, 0, 0, 0, 0, 1, 0, 0)),

	// SI derived
	"Hz": u(1, dim(0, -1, 0, 0, 0, 0, 0, 0, 0, 0)),
	"N":  u(1, dim(1, -2, 1, 0, 0, 0, 0, 0, 0, 0)),
	"J":  u(1, dim(2, -2, 1, 0, 0, 0, 0, 0, 0, 0)),
	"W":  u(1, dim(2, -3, 1, 0, 0, 0, 0, 0, 0, 0)),
	"Pa": u(1, dim(-1, -2, 1, 0, 0, 0, 0, 0, 0, 0)),
	"C":  u(1, dim(0, 1, 0, 1, 0, 0, 0, 0, 0, 0)),
	"V":  u(1, dim(2, -3, 1, -1, 0, 0, 0, 0, 0, 0)),
	"ohm": u(1, dim(2, -3, 1, -2, 0, 0, 0, 0, 0, 0)),
	"F":  u(1, dim(-2, 4, -1, 2, 0, 0, 0, 0, 0, 0)),
	"Wb": u(1, dim(2, -2, 1, -1, 0, 0, 0, 0, 0, 0)),
	"T":  u(1, dim(0, -2, 1, -1, 0, 0, 0, 0, 0, 0)),
	"H":  u(1, dim(2, -2, 1, -2, 0, 0, 0, 0, 0, 0)),
	"lx": u(1, dim(-2, 0, 0, 0, 1, 0, 0, 0, 0, 0)),

	// US customary / imperial length
	"ft":  u(0.3048, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"in":  u(0.0254, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"yd":  u(0.9144, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"mi":  u(1609.344, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),

	// US customary mass
	"lb": u(0.45359237, dim(0, 0, 1, 0, 0, 0, 0, 0, 0, 0)),
	"oz": u(0.028349523125, dim(0, 0, 1, 0, 0, 0, 0, 0, 0, 0)),

	// US customary / cooking volume
	"gal":  u(0.003785411784, dim(3, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"qt":   u(0.000946352946, dim(3, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"pt":   u(0.000473176473, dim(3, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"cup":  u(0.0002365882365, dim(3, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"tbsp": u(1.47867648e-5, dim(3, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"tsp":  u(4.92892159e-6, dim(3, 0, 0, 0, 0, 0, 0, 0, 0, 0)),

	// cgs
	"erg":   u(1e-7, dim(2, -2, 1, 0, 0, 0, 0, 0, 0, 0)),
	"dyn":   u(1e-5, dim(1, -2, 1, 0, 0, 0, 0, 0, 0, 0)),
	"gauss": u(1e-4, dim(0, -2, 1, -1, 0, 0, 0, 0, 0, 0)),

	// Nautical
	"nmi":  u(1852, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"knot": u(1852.0/3600.0, dim(1, -1, 0, 0, 0, 0, 0, 0, 0, 0)),

	// Typographic
	"pt_typ": u(0.0254/72.0, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"pica":   u(12*0.0254/72.0, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),

	// Medical / clinical
	"mmHg": u(133.322387415, dim(-1, -2, 1, 0, 0, 0, 0, 0, 0, 0)),

	// Astronomical
	"ly":  u(9.4607304725808e15, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"pc":  u(3.0856775814913673e16, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"au":  u(1.495978707e11, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)),

	// Textile
	"tex": u(1e-6, dim(-1, 0, 1, 0, 0, 0, 0, 0, 0, 0)),

	// Data
	"bit":  u(1, dim(0, 0, 0, 0, 0, 0, 0, 0, 0, 1)),
	"byte": u(8, dim(0, 0, 0, 0, 0, 0, 0, 0, 0, 1)),

	// Time beyond the second
	"min": u(60, dim(0, 1, 0, 0, 0, 0, 0, 0, 0, 0)),
	"h":   u(3600, dim(0, 1, 0, 0, 0, 0, 0, 0, 0, 0)),
	"day": u(86400, dim(0, 1, 0, 0, 0, 0, 0, 0, 0, 0)),

	// SI-accepted volume and energy
	"L":  u(0.001, dim(3, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"eV": u(1.602176634e-19, dim(2, -2, 1, 0, 0, 0, 0, 0, 0, 0)),

	// Compound customary
	"mph": u(0.44704, dim(1, -1, 0, 0, 0, 0, 0, 0, 0, 0)),

	// Dimensionless ratios
	"%":      u(0.01, dim(0, 0, 0, 0, 0, 0, 0, 0, 0, 0)),
	"strain": u(1, dimf(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, false, false, true, false)),

	// Per-unit quantities: multiplier 1, value scaled by an assumed or
	// caller-supplied base at conversion time. The name picks the
	// default base: 60 Hz for puHz, 100 MVA for puMW, the speed of sound
	// for mach.
	"pu":   u(1, dimf(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, true, false, false, false)),
	"puHz": u(1, dimf(0, -1, 0, 0, 0, 0, 0, 0, 0, 0, true, false, false, false)),
	"puMW": u(1, dimf(2, -3, 1, 0, 0, 0, 0, 0, 0, 0, true, false, false, false)),
	"puV":  u(1, dimf(2, -3, 1, -1, 0, 0, 0, 0, 0, 0, true, false, false, false)),
	"mach": u(1, dimf(1, -1, 0, 0, 0, 0, 0, 0, 0, 0, true, false, false, false)),

	// Currency / counting
	"USD":   u(1, dim(0, 0, 0, 0, 0, 0, 0, 0, 1, 0)),
	"cent":  u(0.01, dim(0, 0, 0, 0, 0, 0, 0, 0, 1, 0)),
	"each":  u(1, dim(0, 0, 0, 0, 0, 0, 0, 0, 0, 1)),
	"dozen": u(12, dim(0, 0, 0, 0, 0, 0, 0, 0, 0, 1)),
	"gross": u(144, dim(0, 0, 0, 0, 0, 0, 0, 0, 0, 1)),
}

// builtinInputOnly maps spelled-out word forms to the same units as the
// symbols above. These resolve on input only: their Fast keys collide
// with the symbols', which remain the preferred serialized names.
var builtinInputOnly = map[string]unit.Precise{
	"meter": builtinTable["m"], "meters": builtinTable["m"],
	"metre": builtinTable["m"], "metres": builtinTable["m"],
	"second": builtinTable["s"], "seconds": builtinTable["s"], "sec": builtinTable["s"],
	"gram": builtinTable["g"], "grams": builtinTable["g"],
	"kilogram": builtinTable["kg"], "kilograms": builtinTable["kg"],
	"minute": builtinTable["min"], "minutes": builtinTable["min"],
	"hour": builtinTable["h"], "hours": builtinTable["h"], "hr": builtinTable["h"],
	"days": builtinTable["day"],
	"liter": builtinTable["L"], "liters": builtinTable["L"],
	"litre": builtinTable["L"], "litres": builtinTable["L"],
	"foot": builtinTable["ft"], "feet": builtinTable["ft"],
	"inch": builtinTable["in"], "inches": builtinTable["in"],
	"yard": builtinTable["yd"], "yards": builtinTable["yd"],
	"mile": builtinTable["mi"], "miles": builtinTable["mi"],
	"pound": builtinTable["lb"], "pounds": builtinTable["lb"],
	"ounce": builtinTable["oz"], "ounces": builtinTable["oz"],
	"gallon": builtinTable["gal"], "gallons": builtinTable["gal"],
	"ampere": builtinTable["A"], "amperes": builtinTable["A"], "amp": builtinTable["A"],
	"kelvin": builtinTable["K"],
	"mole":   builtinTable["mol"], "moles": builtinTable["mol"],
	"radian": builtinTable["rad"], "radians": builtinTable["rad"],
	"hertz":  builtinTable["Hz"],
	"newton": builtinTable["N"], "newtons": builtinTable["N"],
	"joule": builtinTable["J"], "joules": builtinTable["J"],
	"watt": builtinTable["W"], "watts": builtinTable["W"],
	"volt": builtinTable["V"], "volts": builtinTable["V"],
	"count": builtinTable["each"], "item": builtinTable["each"],
	"percent": builtinTable["%"],
}

// buildDomainTables builds the small shadowing tables consulted when a
// non-default domain is active: entries here override the
// built-in table's interpretation of the same symbol for calls made
// while that domain is selected.
func buildDomainTables() map[Domain]map[string]entry {
	cooking := map[string]entry{
		"T": {u: u(1.47867648e-5, dim(3, 0, 0, 0, 0, 0, 0, 0, 0, 0))}, // tablespoon
		"t": {u: u(4.92892159e-6, dim(3, 0, 0, 0, 0, 0, 0, 0, 0, 0))}, // teaspoon
	}
	surveying := map[string]entry{
		"'": {u: u(1200.0/3937.0, dim(1, 0, 0, 0, 0, 0, 0, 0, 0, 0))}, // US survey foot
	}
	return map[Domain]map[string]entry{
		DomainCooking:   cooking,
		DomainSurveying: surveying,
	}
}
