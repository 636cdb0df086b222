package units

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantara-labs/units/dictionary"
)

func TestUnitFromStringAndToString(t *testing.T) {
	u, err := UnitFromString("km", 0)
	require.NoError(t, err)
	assert.Equal(t, "km", ToString(u, 0))
}

func TestConvertKilometersToMeters(t *testing.T) {
	km, err := UnitFromString("km", 0)
	require.NoError(t, err)
	m, err := UnitFromString("m", 0)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, Convert(1, km, m), 1e-9)
}

func TestMeasurementFromStringAndToString(t *testing.T) {
	m, err := MeasurementFromString("9.8 m", 0)
	require.NoError(t, err)
	assert.Equal(t, "9.8 m", MeasurementToString(m, 0))
}

func TestDefaultUnitMass(t *testing.T) {
	u, ok := DefaultUnit("mass")
	require.True(t, ok)
	assert.Equal(t, int32(1), u.Dims.Kilogram())
}

func TestDefaultUnitUnknownQuantity(t *testing.T) {
	_, ok := DefaultUnit("nonsense")
	assert.False(t, ok)
}

func TestAddAndRemoveUserDefinedUnit(t *testing.T) {
	m, err := UnitFromString("m", 0)
	require.NoError(t, err)
	require.NoError(t, AddUserDefinedUnit("smoot", m, dictionary.Bidirectional))
	defer RemoveUserDefinedUnit("smoot")

	u, err := UnitFromString("smoot", 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), u.Dims.Meter())
}

func TestGetCommodityRoundTrip(t *testing.T) {
	code, err := GetCommodity("helium")
	require.NoError(t, err)
	name, ok := GetCommodityName(code)
	require.True(t, ok)
	assert.Equal(t, "helium", name)
}

func TestLoadDefinedUnitsFile(t *testing.T) {
	res, err := LoadDefinedUnitsFile(strings.NewReader(`"fortnight" = 1209600 s`))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Loaded)
	defer RemoveUserDefinedUnit("fortnight")

	u, err := UnitFromString("fortnight", 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), u.Dims.Second())
}
