package simparams

import (
	"errors"
	"testing"

	physics "Hoist/internal/calc/physics"
	scenario "Hoist/internal/calc/scenario"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{
		Config:         scenario.Config("default"),
		PayloadLengthM: 2.0,
		PayloadWidthM:  1.0,
		PayloadHeightM: 0.5,
	}
}

func TestBuild(t *testing.T) {
	res, err := Build(validInput())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Parameters["payload_volume"], 1e-9)
	assert.InDelta(t, 1000.0, res.Parameters["payload_density"], 1e-9)
	assert.InDelta(t, physics.AirDensityKGM3, res.Parameters["air_density"], 1e-9)
	assert.InDelta(t, physics.GravityMPS2, res.Parameters["gravity"], 1e-9)
	assert.NotEmpty(t, res.Instructions)
}

func TestBuild_AirDensityOverride(t *testing.T) {
	in := validInput()
	in.AirDensityKGM3 = 0.9

	res, err := Build(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, res.Parameters["air_density"], 1e-9)

	expected := physics.WindForceAtDensity(res.Parameters["wind_speed"], in.Config.ExposedAreaM2, res.Parameters["drag_coeff"], 0.9)
	assert.InDelta(t, expected, res.Parameters["wind_force"], 1e-9)
}

func TestBuild_ZeroVolume(t *testing.T) {
	in := validInput()
	in.PayloadHeightM = 0

	_, err := Build(in)
	require.Error(t, err)

	var domainErr *physics.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "payload_volume_m3", domainErr.Param)
}
