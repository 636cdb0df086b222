package measurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantara-labs/units/commodity"
	"github.com/vantara-labs/units/dictionary"
	"github.com/vantara-labs/units/matchflags"
	"github.com/vantara-labs/units/parse"
)

func newTestParser() *parse.Parser {
	return parse.New(dictionary.New(), commodity.NewRegistry())
}

func TestFromStringSplitsValueAndUnit(t *testing.T) {
	p := newTestParser()
	m, err := FromString(p, "9.8 m", 0)
	require.NoError(t, err)
	assert.Equal(t, 9.8, m.Value)
	assert.Equal(t, int32(1), m.Unit.Dims.Meter())
}

func TestFromStringRejectsMissingNumber(t *testing.T) {
	p := newTestParser()
	_, err := FromString(p, "m", 0)
	assert.Error(t, err)
}

func TestFromStringRejectsUnresolvableUnit(t *testing.T) {
	p := newTestParser()
	_, err := FromString(p, "3 notaunit", 0)
	assert.Error(t, err)
}

func TestUncertainFromStringExplicitMarker(t *testing.T) {
	p := newTestParser()
	u, err := UncertainFromString(p, "9.8 +/- 0.1 m", 0)
	require.NoError(t, err)
	assert.Equal(t, 9.8, u.Value)
	assert.InDelta(t, 0.1, u.Uncertainty, 1e-9)
	assert.Equal(t, int32(1), u.Unit.Dims.Meter())
}

func TestUncertainFromStringUnicodeMarker(t *testing.T) {
	p := newTestParser()
	u, err := UncertainFromString(p, "9.8 ± 0.1 m", 0)
	require.NoError(t, err)
	assert.Equal(t, 9.8, u.Value)
	assert.InDelta(t, 0.1, u.Uncertainty, 1e-9)
}

func TestUncertainFromStringHTMLEntityMarker(t *testing.T) {
	p := newTestParser()
	u, err := UncertainFromString(p, "9.8 &plusmn; 0.1 m", 0)
	require.NoError(t, err)
	assert.Equal(t, 9.8, u.Value)
	assert.InDelta(t, 0.1, u.Uncertainty, 1e-9)
}

func TestUncertainFromStringConciseForm(t *testing.T) {
	p := newTestParser()
	u, err := UncertainFromString(p, "9.80665(23) m", matchflags.Flags(0))
	require.NoError(t, err)
	assert.Equal(t, 9.80665, u.Value)
	assert.InDelta(t, 0.00023, u.Uncertainty, 1e-12)
	assert.Equal(t, int32(1), u.Unit.Dims.Meter())
}

func TestUncertainFromStringNoMarkerHasZeroUncertainty(t *testing.T) {
	p := newTestParser()
	u, err := UncertainFromString(p, "9.8 m", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, u.Uncertainty)
}

func TestUncertainFromStringConciseScientificScale(t *testing.T) {
	m, err := UncertainFromString(newTestParser(), "4.56323(45)x10^-12 kg", 0)
	require.NoError(t, err)
	assert.InEpsilon(t, 4.56323e-12, m.Value, 1e-9)
	assert.InEpsilon(t, 4.5e-16, m.Uncertainty, 1e-9)
	assert.Equal(t, int32(1), m.Unit.Dims.Kilogram())
}
