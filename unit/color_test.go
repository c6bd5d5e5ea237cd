package unit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandflow/ttconv/unit"
)

func TestParseColorNamed(t *testing.T) {
	c, err := unit.ParseColor("red")
	require.NoError(t, err)
	require.Equal(t, unit.Color{R: 255, G: 0, B: 0, A: 255}, c)
}

func TestParseColorHex(t *testing.T) {
	c, err := unit.ParseColor("#00FF00")
	require.NoError(t, err)
	require.Equal(t, unit.Color{R: 0, G: 255, B: 0, A: 255}, c)

	c, err = unit.ParseColor("#0000FF80")
	require.NoError(t, err)
	require.Equal(t, unit.Color{R: 0, G: 0, B: 255, A: 0x80}, c)
}

func TestParseColorInvalid(t *testing.T) {
	_, err := unit.ParseColor("#ZZZ")
	require.Error(t, err)
	_, err = unit.ParseColor("notacolor")
	require.Error(t, err)
}
