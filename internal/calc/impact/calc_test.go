package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{MassKg: 40, DropHeightM: 2, DeformationM: 0.01})
	require.NoError(t, err)
	assert.InDelta(t, 78480, res.ImpactForceN, 10)
	assert.InDelta(t, 8000, res.ImpactForceKgf, 1)
}

func TestCalculate_Invalid(t *testing.T) {
	cases := []Input{
		{MassKg: 0, DropHeightM: 1, DeformationM: 0.05},
		{MassKg: 100, DropHeightM: -1, DeformationM: 0.05},
		{MassKg: 100, DropHeightM: 1, DeformationM: 0},
	}
	for _, in := range cases {
		_, err := Calculate(in)
		assert.Error(t, err)
	}
}
