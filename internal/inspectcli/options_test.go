package inspectcli

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("neoscan-inspect")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgs_RequiresLookup(t *testing.T) {
	_, err := parse(t)
	require.Error(t, err)
}

func TestParseArgs_PdesAndNameConflict(t *testing.T) {
	_, err := parse(t, "--pdes", "433", "--name", "Eros")
	require.Error(t, err)
}

func TestParseArgs_ByName(t *testing.T) {
	opt, err := parse(t, "--name", "Eros", "--approaches", "--json")
	require.NoError(t, err)
	assert.Equal(t, "Eros", opt.Name)
	assert.True(t, opt.Approaches)
	assert.True(t, opt.JSON)
}

func TestParseArgs_Version(t *testing.T) {
	opt, err := parse(t, "-v")
	require.NoError(t, err)
	assert.True(t, opt.Version)
}
