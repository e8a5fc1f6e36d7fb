package physics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpactForce(t *testing.T) {
	got, err := ImpactForce(40, 2, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 78480, got, 10)
}

func TestImpactForce_Formula(t *testing.T) {
	cases := []struct {
		mass, height, deformation float64
	}{
		{100, 1, 0.05},
		{1075, 0.5, 0.05},
		{2500, 3, 0.1},
		{1, 0.01, 0.001},
	}
	for _, c := range cases {
		got, err := ImpactForce(c.mass, c.height, c.deformation)
		require.NoError(t, err)
		assert.InDelta(t, c.mass*GravityMPS2*c.height/c.deformation, got, 1e-9)
	}
}

func TestImpactForce_ZeroHeight(t *testing.T) {
	got, err := ImpactForce(1000, 0, 0.05)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestImpactForce_NonPositiveDeformation(t *testing.T) {
	for _, d := range []float64{0, -0.01} {
		_, err := ImpactForce(1000, 1, d)
		require.Error(t, err)

		var domainErr *DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "deformation_limit_m", domainErr.Param)
		assert.Equal(t, d, domainErr.Value)
	}
}

func TestNewtonsToKgf_RoundTrip(t *testing.T) {
	forceN, err := ImpactForce(1075, 0.5, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, forceN/GravityMPS2, NewtonsToKgf(forceN), 1e-9)
}

func TestWindForce(t *testing.T) {
	// 0.5 * 1.225 * 15^2 * 2.0 * 1.2
	assert.InDelta(t, 330.75, WindForceWithDrag(15, 2.0, 1.2), 1)
}

func TestWindForce_DefaultDrag(t *testing.T) {
	assert.InDelta(t, WindForceWithDrag(10, 3.0, DefaultDragCoefficient), WindForce(10, 3.0), 1e-9)
}

func TestWindForceAtDensity(t *testing.T) {
	// Halving the density halves the force.
	full := WindForceAtDensity(12, 2.5, 1.0, AirDensityKGM3)
	half := WindForceAtDensity(12, 2.5, 1.0, AirDensityKGM3/2)
	assert.InDelta(t, full/2, half, 1e-9)
}

func TestCheckOverload(t *testing.T) {
	// 5000 * 1.3 = 6500 exceeds the 5000 kg rating.
	assert.False(t, CheckOverload(5000, 5000, 1.3))
	// 500 * 1.5 = 750 fits within 2000 kg.
	assert.True(t, CheckOverload(500, 2000, 1.5))
	// Boundary: exactly at capacity still passes.
	assert.True(t, CheckOverload(1000, 2000, 2.0))
}
