package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByCode(t *testing.T) {
	c, ok := ByCode("EUR")
	require.True(t, ok)
	assert.Equal(t, "€", c.Symbol)
	assert.Equal(t, 2, c.MinorUnits)

	_, ok = ByCode("XXX")
	assert.False(t, ok)
}

func TestBySymbol(t *testing.T) {
	c, ok := BySymbol("£")
	require.True(t, ok)
	assert.Equal(t, "GBP", c.Code)
}

func TestUnitCarriesCurrencyDimension(t *testing.T) {
	usd, ok := ByCode("USD")
	require.True(t, ok)
	u := usd.Unit()
	assert.Equal(t, int32(1), u.Dims.Currency())
	assert.Equal(t, int32(0), u.Dims.Meter())
	assert.Equal(t, 1.0, float64(u.Multiplier))
}

func TestAllCurrenciesShareOneUnit(t *testing.T) {
	usd, _ := ByCode("USD")
	jpy, _ := ByCode("JPY")
	assert.True(t, usd.Unit().Equal(jpy.Unit()))
}
