package overload

import (
	"errors"
	"testing"

	physics "Hoist/internal/calc/physics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{LoadMassKg: 500, CraneCapacityKg: 2000, SafetyFactor: 1.5})
	require.NoError(t, err)
	assert.InDelta(t, 750, res.EffectiveLoadKg, 1e-9)
	assert.InDelta(t, 0.375, res.LoadRatio, 1e-9)
	assert.True(t, res.Safe)
}

func TestCalculate_Overloaded(t *testing.T) {
	res, err := Calculate(Input{LoadMassKg: 5000, CraneCapacityKg: 5000, SafetyFactor: 1.3})
	require.NoError(t, err)
	assert.Greater(t, res.LoadRatio, 1.0)
	assert.False(t, res.Safe)
}

func TestCalculate_DefaultSafetyFactor(t *testing.T) {
	res, err := Calculate(Input{LoadMassKg: 1000, CraneCapacityKg: 2000})
	require.NoError(t, err)
	assert.InDelta(t, 1000, res.EffectiveLoadKg, 1e-9)
}

func TestCalculate_InvalidCapacity(t *testing.T) {
	_, err := Calculate(Input{LoadMassKg: 1000, CraneCapacityKg: 0, SafetyFactor: 1.3})
	require.Error(t, err)

	var domainErr *physics.DomainError
	assert.True(t, errors.As(err, &domainErr))
}
