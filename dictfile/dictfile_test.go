package dictfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantara-labs/units/commodity"
	"github.com/vantara-labs/units/dictionary"
	"github.com/vantara-labs/units/parse"
)

func newTestEnv() (*parse.Parser, *dictionary.Dictionary) {
	dict := dictionary.New()
	return parse.New(dict, commodity.NewRegistry()), dict
}

func TestLoadBidirectionalEntry(t *testing.T) {
	p, dict := newTestEnv()
	res, err := Load(strings.NewReader(`"fortnight" = 1209600 s`), p, dict)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Loaded)
	assert.Empty(t, res.Diagnostics)

	u, ok := dict.ByName("fortnight")
	require.True(t, ok)
	assert.Equal(t, int32(1), u.Dims.Second())

	name, ok := dict.ByUnit(u.ToFast())
	require.True(t, ok)
	assert.Equal(t, "fortnight", name)
}

func TestLoadInputOnlyEntryNotChosenForOutput(t *testing.T) {
	p, dict := newTestEnv()
	res, err := Load(strings.NewReader(`myunit <= 1 m`), p, dict)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Loaded)

	_, ok := dict.ByName("myunit")
	assert.True(t, ok)

	m, ok := dict.ByName("m")
	require.True(t, ok)
	name, ok := dict.ByUnit(m.ToFast())
	require.True(t, ok)
	assert.Equal(t, "m", name)
}

func TestLoadOutputOnlyEntryNotResolvedAsInput(t *testing.T) {
	p, dict := newTestEnv()
	res, err := Load(strings.NewReader(`yourunit => 1 m`), p, dict)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Loaded)

	_, ok := dict.ByName("yourunit")
	assert.False(t, ok)
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	p, dict := newTestEnv()
	src := "# a comment\n\n\"fortnight\" = 1209600 s  # trailing note\n"
	res, err := Load(strings.NewReader(src), p, dict)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Loaded)
	assert.Empty(t, res.Diagnostics)
}

func TestLoadReportsMalformedLineWithoutAborting(t *testing.T) {
	p, dict := newTestEnv()
	src := "not a valid line at all\n\"fortnight\" = 1209600 s\n"
	res, err := Load(strings.NewReader(src), p, dict)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Loaded)
	require.Len(t, res.Diagnostics, 1)
	assert.Contains(t, res.Diagnostics[0], "line 1")

	_, ok := dict.ByName("fortnight")
	assert.True(t, ok)
}

func TestLoadQuotedNameWithEmbeddedSpace(t *testing.T) {
	p, dict := newTestEnv()
	res, err := Load(strings.NewReader(`'metric ton' = 1000 kg`), p, dict)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Loaded)

	u, ok := dict.ByName("metric ton")
	require.True(t, ok)
	assert.Equal(t, int32(1), u.Dims.Kilogram())
}
