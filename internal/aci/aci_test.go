package aci

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcreteShear(t *testing.T) {
	// 0.17·√30·300·500/1000
	want := 0.17 * math.Sqrt(30) * 300 * 500 / 1000
	got := ConcreteShear(30, 300, 500)
	require.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 139.669, got, 0.001)
}

func TestConcreteShearZeroStrength(t *testing.T) {
	assert.Zero(t, ConcreteShear(0, 300, 500))
}

func TestFactoredLoad(t *testing.T) {
	loads := ServiceLoads{Dead: 10, Live: 5, Roof: 2, Rain: 1}

	// Combination 2: 1.2D + 1.6L + 0.5(Lr or R)
	combo := LoadCombinations[1]
	require.Equal(t, "2", combo.ID)
	// Both Lr and R carry the 0.5 factor when present.
	want := 1.2*10 + 1.6*5 + 0.5*2 + 0.5*1
	assert.InDelta(t, want, combo.Factored(loads), 1e-12)
}

func TestGoverningGravity(t *testing.T) {
	wu, combo := Governing(ServiceLoads{Dead: 10, Live: 5}, GravityCombinations)
	// max(1.4·10, 1.2·10 + 1.6·5) = max(14, 20)
	assert.InDelta(t, 20.0, wu, 1e-12)
	assert.Equal(t, "2", combo.ID)
}

func TestGoverningDeadOnly(t *testing.T) {
	wu, combo := Governing(ServiceLoads{Dead: 10}, GravityCombinations)
	assert.InDelta(t, 14.0, wu, 1e-12)
	assert.Equal(t, "1", combo.ID)
}

func TestGoverningFullSet(t *testing.T) {
	loads := ServiceLoads{Dead: 8, Live: 4, Wind: 6}
	wu, combo := Governing(loads, LoadCombinations)

	// Combination 4 governs: 1.2·8 + 1.0·6 + 1.0·4 = 19.6
	assert.InDelta(t, 19.6, wu, 1e-12)
	assert.Equal(t, "4", combo.ID)
}

func TestServiceLoadsZero(t *testing.T) {
	assert.True(t, ServiceLoads{}.Zero())
	assert.False(t, ServiceLoads{Wind: 1}.Zero())
}
