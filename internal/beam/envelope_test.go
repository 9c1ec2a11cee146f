package beam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference load case used across the envelope tests: w=30 kN/m, L=20 m,
// so w·L² = 12000.
func refEnvelope(t *testing.T, v Variant) Envelope {
	t.Helper()
	env, err := NewEnvelope(v, 30, 20)
	require.NoError(t, err)
	return env
}

func TestMaxMomentPerVariant(t *testing.T) {
	cases := []struct {
		variant Variant
		want    float64
	}{
		{SimplySupported, 1500}, // w·L²/8
		{FixedEnd, 1000},        // w·L²/12
		{Cantilever, 6000},      // w·L²/2
		{Overhang, 1200},        // w·L²/10
	}
	for _, tc := range cases {
		env := refEnvelope(t, tc.variant)
		assert.InDelta(t, tc.want, env.MaxMoment(), 1e-9, tc.variant.String())
	}
}

func TestMaxShearUsesEndReaction(t *testing.T) {
	// The simplified method takes w·L/2 for every support condition.
	for _, v := range Variants() {
		env := refEnvelope(t, v)
		assert.InDelta(t, 300.0, env.MaxShear(), 1e-9, v.String())
	}
}

func TestEnvelopeBoundaries(t *testing.T) {
	t.Run("simply supported", func(t *testing.T) {
		env := refEnvelope(t, SimplySupported)
		assert.InDelta(t, 0, env.MomentAt(0), 1e-9)
		assert.InDelta(t, 0, env.MomentAt(env.L), 1e-9)
		assert.InDelta(t, 300, env.ShearAt(0), 1e-9)     // +w·L/2
		assert.InDelta(t, -300, env.ShearAt(env.L), 1e-9) // -w·L/2
		assert.InDelta(t, 0, env.ShearAt(env.L/2), 1e-9)
		assert.InDelta(t, env.MaxMoment(), env.MomentAt(env.L/2), 1e-9)
	})

	t.Run("cantilever", func(t *testing.T) {
		env := refEnvelope(t, Cantilever)
		assert.InDelta(t, 600, env.ShearAt(0), 1e-9) // w·L at the support
		assert.InDelta(t, 0, env.ShearAt(env.L), 1e-9)
		assert.InDelta(t, 6000, env.MomentAt(0), 1e-9) // w·L²/2 at the support
		assert.InDelta(t, 0, env.MomentAt(env.L), 1e-9)
	})

	t.Run("fixed end keeps the simplified midspan shape", func(t *testing.T) {
		// The distribution intentionally reuses the simply supported
		// parabola with a /12 denominator, so M(L/2) = w·L²/48, not the
		// w·L²/24 of the exact fixed-fixed solution.
		env := refEnvelope(t, FixedEnd)
		assert.InDelta(t, 30.0*400/48, env.MomentAt(env.L/2), 1e-9)
		assert.InDelta(t, 300, env.ShearAt(0), 1e-9)
	})

	t.Run("overhang", func(t *testing.T) {
		env := refEnvelope(t, Overhang)
		assert.InDelta(t, 30.0*400/40, env.MomentAt(env.L/2), 1e-9) // w·L²/40 midspan
		assert.InDelta(t, 0, env.MomentAt(0), 1e-9)
		assert.InDelta(t, 0, env.MomentAt(env.L), 1e-9)
	})
}

func TestSampleSpacing(t *testing.T) {
	env := refEnvelope(t, SimplySupported)
	xs, shears, moments := env.Sample(100)

	require.Len(t, xs, 100)
	require.Len(t, shears, 100)
	require.Len(t, moments, 100)

	assert.InDelta(t, 0, xs[0], 1e-12)
	assert.InDelta(t, env.L, xs[len(xs)-1], 1e-12)

	step := env.L / 99
	for i := 1; i < len(xs); i++ {
		assert.InDelta(t, step, xs[i]-xs[i-1], 1e-9)
	}
}

func TestSampleMinimumStations(t *testing.T) {
	env := refEnvelope(t, Cantilever)
	xs, _, _ := env.Sample(1)
	require.Len(t, xs, 2)
	assert.InDelta(t, 0, xs[0], 1e-12)
	assert.InDelta(t, env.L, xs[1], 1e-12)
}

func TestNewEnvelopeValidation(t *testing.T) {
	_, err := NewEnvelope(SimplySupported, 30, 0)
	require.ErrorIs(t, err, ErrSpan)

	_, err = NewEnvelope(SimplySupported, 30, -5)
	require.ErrorIs(t, err, ErrSpan)

	_, err = NewEnvelope(SimplySupported, 30, math.NaN())
	require.ErrorIs(t, err, ErrSpan)

	_, err = NewEnvelope(SimplySupported, -1, 20)
	require.ErrorIs(t, err, ErrDomain)

	_, err = NewEnvelope(SimplySupported, math.Inf(1), 20)
	require.ErrorIs(t, err, ErrDomain)
}

func TestZeroLoadEnvelope(t *testing.T) {
	env, err := NewEnvelope(FixedEnd, 0, 20)
	require.NoError(t, err)
	assert.Zero(t, env.MaxMoment())
	assert.Zero(t, env.ShearAt(5))
	assert.Zero(t, env.MomentAt(5))
}

func TestOutOfRangeVariantDegradesToZero(t *testing.T) {
	env := Envelope{Variant: Variant(99), W: 30, L: 20}
	assert.Zero(t, env.MaxMoment())
	assert.Zero(t, env.MaxShear())
	assert.Zero(t, env.ShearAt(10))
	assert.Zero(t, env.MomentAt(10))
}
