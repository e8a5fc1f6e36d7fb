package scenario

import (
	"testing"

	safety "Hoist/internal/calc/safety"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_KnownScenarios(t *testing.T) {
	for _, name := range []string{"light_load", "heavy_load", "heavy_wind", "critical", "default"} {
		cfg := Config(name)
		assert.Positive(t, cfg.PayloadMassKg, name)
		assert.Positive(t, cfg.CraneCapacityKg, name)
		assert.Positive(t, cfg.DeformationLimitM, name)
	}
}

func TestConfig_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Config(DefaultName), Config("no_such_scenario"))
	assert.Equal(t, Config(DefaultName), Config(""))
}

func TestConfig_NormalizesName(t *testing.T) {
	assert.Equal(t, Config("heavy_wind"), Config("  Heavy_Wind "))
}

func TestPresets_EvaluateCleanly(t *testing.T) {
	// Every preset must be a complete, evaluable configuration.
	for _, name := range Names() {
		_, err := safety.Evaluate(Config(name))
		require.NoError(t, err, name)
	}
}

func TestPresets_MatchTheirNames(t *testing.T) {
	rep, err := safety.Evaluate(Config("critical"))
	require.NoError(t, err)
	assert.Equal(t, safety.RiskCritical, rep.RiskLevel)
	assert.False(t, rep.SafeToLift)

	rep, err = safety.Evaluate(Config("heavy_wind"))
	require.NoError(t, err)
	assert.Equal(t, safety.RiskHighWind, rep.RiskLevel)

	rep, err = safety.Evaluate(Config("light_load"))
	require.NoError(t, err)
	assert.Equal(t, safety.RiskLow, rep.RiskLevel)
}
