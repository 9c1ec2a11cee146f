package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariantRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		require.NoError(t, err, v.String())
		assert.Equal(t, v, got)
	}
}

func TestParseVariantTolerantSpelling(t *testing.T) {
	cases := map[string]Variant{
		"simply supported": SimplySupported,
		"  Fixed End  ":    FixedEnd,
		"CANTILEVER":       Cantilever,
		"overhang":         Overhang,
	}
	for in, want := range cases {
		got, err := ParseVariant(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseVariantUnknown(t *testing.T) {
	for _, in := range []string{"", "Continuous", "Simply-Supported", "Propped Cantilever"} {
		_, err := ParseVariant(in)
		require.ErrorIs(t, err, ErrUnknownVariant, in)
	}
}

func TestVariantStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Variant(42)", Variant(42).String())
}
