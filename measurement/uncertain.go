package measurement

import "math"

// UncertainMeasurement adds a scalar uncertainty to a Measurement. Both
// types hold a float64 value and a unit.Precise; this package has no
// single-precision measurement type and no conversion between precision
// tiers.
type UncertainMeasurement struct {
	Measurement
	Uncertainty float64
}

// NewUncertain builds an UncertainMeasurement.
func NewUncertain(value, uncertainty float64, u Measurement) UncertainMeasurement {
	return UncertainMeasurement{Measurement: Measurement{Value: value, Unit: u.Unit}, Uncertainty: math.Abs(uncertainty)}
}

// Mul combines uncertainties in quadrature (root-sum-square), the
// standard propagation rule for independent multiplicative errors.
func (m UncertainMeasurement) Mul(o UncertainMeasurement) UncertainMeasurement {
	value := m.Measurement.Mul(o.Measurement)
	relM := safeRel(m.Uncertainty, m.Value)
	relO := safeRel(o.Uncertainty, o.Value)
	relResult := math.Sqrt(relM*relM + relO*relO)
	return UncertainMeasurement{Measurement: value, Uncertainty: math.Abs(value.Value) * relResult}
}

// Div is Mul's counterpart for division; relative uncertainties still
// combine in quadrature.
func (m UncertainMeasurement) Div(o UncertainMeasurement) UncertainMeasurement {
	value := m.Measurement.Div(o.Measurement)
	relM := safeRel(m.Uncertainty, m.Value)
	relO := safeRel(o.Uncertainty, o.Value)
	relResult := math.Sqrt(relM*relM + relO*relO)
	return UncertainMeasurement{Measurement: value, Uncertainty: math.Abs(value.Value) * relResult}
}

// SimpleMul propagates uncertainty linearly rather than in quadrature,
// for callers that want the conservative (non-independent-errors) bound.
func (m UncertainMeasurement) SimpleMul(o UncertainMeasurement) UncertainMeasurement {
	value := m.Measurement.Mul(o.Measurement)
	relM := safeRel(m.Uncertainty, m.Value)
	relO := safeRel(o.Uncertainty, o.Value)
	return UncertainMeasurement{Measurement: value, Uncertainty: math.Abs(value.Value) * (relM + relO)}
}

// SimpleDiv is SimpleMul's division counterpart.
func (m UncertainMeasurement) SimpleDiv(o UncertainMeasurement) UncertainMeasurement {
	value := m.Measurement.Div(o.Measurement)
	relM := safeRel(m.Uncertainty, m.Value)
	relO := safeRel(o.Uncertainty, o.Value)
	return UncertainMeasurement{Measurement: value, Uncertainty: math.Abs(value.Value) * (relM + relO)}
}

// Add requires a compatible base; the right operand's value AND
// uncertainty are both converted into the left operand's units before
// summing. Uncertainties combine in quadrature (independent errors).
func (m UncertainMeasurement) Add(o UncertainMeasurement) UncertainMeasurement {
	value := m.Measurement.Add(o.Measurement)
	scale := convertedScale(m.Measurement, o.Measurement)
	oUnc := o.Uncertainty * scale
	return UncertainMeasurement{Measurement: value, Uncertainty: math.Hypot(m.Uncertainty, oUnc)}
}

// Sub is Add's subtractive counterpart.
func (m UncertainMeasurement) Sub(o UncertainMeasurement) UncertainMeasurement {
	value := m.Measurement.Sub(o.Measurement)
	scale := convertedScale(m.Measurement, o.Measurement)
	oUnc := o.Uncertainty * scale
	return UncertainMeasurement{Measurement: value, Uncertainty: math.Hypot(m.Uncertainty, oUnc)}
}

// ConvertTo rescales both the value and the uncertainty into to's units.
func (m UncertainMeasurement) ConvertTo(to Measurement) UncertainMeasurement {
	scale := scaleFactor(m.Measurement, to)
	converted := m.Measurement.ConvertTo(to.Unit)
	return UncertainMeasurement{Measurement: converted, Uncertainty: m.Uncertainty * scale}
}

func safeRel(uncertainty, value float64) float64 {
	if value == 0 {
		return 0
	}
	return uncertainty / value
}

// convertedScale reports the multiplicative factor converting a unit
// quantity from o's units into m's units, used to rescale uncertainty
// alongside value during Add/Sub.
func convertedScale(m, o Measurement) float64 {
	return scaleFactor(o, m)
}
