package serialize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantara-labs/units/commodity"
	"github.com/vantara-labs/units/custom"
	"github.com/vantara-labs/units/dictionary"
	"github.com/vantara-labs/units/dims"
	"github.com/vantara-labs/units/equation"
	"github.com/vantara-labs/units/matchflags"
	"github.com/vantara-labs/units/numeric"
	"github.com/vantara-labs/units/unit"
)

func newSerializer() *Serializer {
	return New(dictionary.New(), commodity.NewRegistry())
}

func TestDirectDictionaryHit(t *testing.T) {
	s := newSerializer()
	u, ok := s.Dict.ByName("kg")
	require.True(t, ok)
	assert.Equal(t, "kg", s.ToString(u, 0))
}

func TestInverseDictionaryHit(t *testing.T) {
	s := newSerializer()
	kg, ok := s.Dict.ByName("kg")
	require.True(t, ok)
	inv := unit.Inv(kg)
	assert.Equal(t, "1/kg", s.ToString(inv, 0))
}

func TestInverseSecondPrefersHertz(t *testing.T) {
	s := newSerializer()
	sec, ok := s.Dict.ByName("s")
	require.True(t, ok)
	assert.Equal(t, "Hz", s.ToString(unit.Inv(sec), 0))
}

func TestDimensionlessPrefix(t *testing.T) {
	s := newSerializer()
	u := unit.Precise{Dims: dims.Dimensionless(), Multiplier: 1000}
	assert.Equal(t, "k", s.ToString(u, 0))
}

func TestDimensionlessDecimalLiteral(t *testing.T) {
	s := newSerializer()
	u := unit.Precise{Dims: dims.Dimensionless(), Multiplier: 1.5}
	assert.Equal(t, "1.5", s.ToString(u, 0))
}

func TestSquareRootProbe(t *testing.T) {
	s := newSerializer()
	m, ok := s.Dict.ByName("m")
	require.True(t, ok)
	area := unit.Mul(m, m)
	assert.Equal(t, "m^2", s.ToString(area, 0))
}

func TestPrefixedDirectHit(t *testing.T) {
	s := newSerializer()
	m, ok := s.Dict.ByName("m")
	require.True(t, ok)
	km := unit.Precise{Dims: m.Dims, Multiplier: 1000}
	assert.Equal(t, "km", s.ToString(km, 0))
}

func TestRawExpansionFallback(t *testing.T) {
	s := newSerializer()
	u := unit.Precise{Dims: mustDims(t, -2, 0, 0, 1, 0, 0, 0, 0, 0, 0), Multiplier: 1}
	out := s.ToString(u, 0)
	assert.Contains(t, out, "m")
	assert.Contains(t, out, "A")
}

func TestMultiplierSpecialCases(t *testing.T) {
	s := newSerializer()
	zero := unit.Precise{Dims: dims.Dimensionless(), Multiplier: 0}
	assert.Equal(t, "0", s.ToString(zero, 0))

	inf := unit.Precise{Dims: dims.Dimensionless(), Multiplier: numeric.Precise(math.Inf(1))}
	assert.Equal(t, "INF", s.ToString(inf, 0))

	nan := unit.Precise{Dims: dims.Dimensionless(), Multiplier: numeric.Precise(math.NaN())}
	assert.Equal(t, "NaN", s.ToString(nan, 0))
}

func TestCustomUnitToken(t *testing.T) {
	s := newSerializer()
	d, err := custom.EncodeUnit(7)
	require.NoError(t, err)
	u := unit.Precise{Dims: d, Multiplier: 1}
	assert.Equal(t, "CXUN[7]", s.ToString(u, 0))
}

func TestEquationUnitToken(t *testing.T) {
	s := newSerializer()
	d, err := equation.EncodeTuple(equation.Log10, false)
	require.NoError(t, err)
	u := unit.Precise{Dims: d, Multiplier: 1}
	assert.Equal(t, "EQXUN[0]", s.ToString(u, 0))
}

func TestCommoditySuffixAttached(t *testing.T) {
	s := newSerializer()
	kg, ok := s.Dict.ByName("kg")
	require.True(t, ok)
	code, err := s.Commodities.Get("gold")
	require.NoError(t, err)
	kg.Commodity = code
	assert.Equal(t, "kg{gold}", s.ToString(kg, 0))
}

func TestInverseCommodityPrefix(t *testing.T) {
	s := newSerializer()
	kg, ok := s.Dict.ByName("kg")
	require.True(t, ok)
	code, err := s.Commodities.Get("gold")
	require.NoError(t, err)
	kg.Commodity = code.Invert()
	assert.Equal(t, "1/kg", s.ToString(kg, 0))
}

func TestNoCommoditiesFlagSuppressesSuffix(t *testing.T) {
	s := newSerializer()
	kg, ok := s.Dict.ByName("kg")
	require.True(t, ok)
	code, err := s.Commodities.Get("gold")
	require.NoError(t, err)
	kg.Commodity = code
	flags := matchflags.Flags(0).WithNoCommodities(true)
	assert.Equal(t, "kg", s.ToString(kg, flags))
}

func mustDims(t *testing.T, meter, second, kilogram, ampere, candela, kelvin, mole, radian, currency, count int32) dims.Tuple {
	t.Helper()
	tup, err := dims.New(meter, second, kilogram, ampere, candela, kelvin, mole, radian, currency, count, false, false, false, false)
	require.NoError(t, err)
	return tup
}
