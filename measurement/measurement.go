// Package measurement implements component H: a (scalar value, unit)
// pair closed under the measurement-level operators (multiply, divide,
// add, subtract, modulo, convert_to).
package measurement

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/vantara-labs/units/convert"
	"github.com/vantara-labs/units/unit"
)

// Measurement pairs a scalar value with the unit it is expressed in.
type Measurement struct {
	Value float64
	Unit  unit.Precise
}

// New builds a Measurement.
func New(value float64, u unit.Precise) Measurement {
	return Measurement{Value: value, Unit: u}
}

// Mul multiplies two measurements: values multiply, units multiply per
// unit.Mul.
func (m Measurement) Mul(o Measurement) Measurement {
	return Measurement{Value: m.Value * o.Value, Unit: unit.Mul(m.Unit, o.Unit)}
}

// Div divides two measurements: values divide, units divide per unit.Div.
func (m Measurement) Div(o Measurement) Measurement {
	return Measurement{Value: m.Value / o.Value, Unit: unit.Div(m.Unit, o.Unit)}
}

// Add requires a compatible dimensional base; o is converted into m's
// units before the values are summed. The result carries m's units.
func (m Measurement) Add(o Measurement) Measurement {
	converted := convert.Convert(o.Value, o.Unit, m.Unit)
	return Measurement{Value: m.Value + converted, Unit: m.Unit}
}

// Sub is Add's subtractive counterpart.
func (m Measurement) Sub(o Measurement) Measurement {
	converted := convert.Convert(o.Value, o.Unit, m.Unit)
	return Measurement{Value: m.Value - converted, Unit: m.Unit}
}

// Mod is only meaningful on compatible bases; o is converted into m's
// units first.
func (m Measurement) Mod(o Measurement) Measurement {
	converted := convert.Convert(o.Value, o.Unit, m.Unit)
	return Measurement{Value: math.Mod(m.Value, converted), Unit: m.Unit}
}

// ConvertTo converts m into to's units.
func (m Measurement) ConvertTo(to unit.Precise) Measurement {
	return Measurement{Value: convert.Convert(m.Value, m.Unit, to), Unit: to}
}

// IsError reports whether m carries an error or invalid unit sentinel,
// or a NaN value.
func (m Measurement) IsError() bool {
	return m.Unit.IsError() || m.Unit.IsInvalid() || math.IsNaN(m.Value)
}

// Format renders the scalar part of m using a locale-aware decimal
// printer, the way currency.Amount.Format renders its scaled
// value. The unit is not rendered here (that is serialize's job); this
// only formats the numeric magnitude.
func (m Measurement) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(m.Value))
}

func (m Measurement) String() string {
	return m.Format(language.Tag{})
}

// scaleFactor reports the multiplicative factor that converts a unit
// quantity expressed in from's units into to's units, used by
// UncertainMeasurement to rescale uncertainty alongside value.
func scaleFactor(from, to Measurement) float64 {
	return convert.Convert(1, from.Unit, to.Unit)
}
