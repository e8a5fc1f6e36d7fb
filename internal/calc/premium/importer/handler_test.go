package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiftRow(t *testing.T) {
	row := []string{"1000", "50", "25", "1.3", "0.5", "0.05", "3", "2.0", "5000"}

	cfg, err := parseLiftRow(row)
	require.NoError(t, err)
	assert.InDelta(t, 1000, cfg.PayloadMassKg, 1e-9)
	assert.InDelta(t, 50, cfg.PulleyMassKg, 1e-9)
	assert.InDelta(t, 1.3, cfg.SafetyFactor, 1e-9)
	assert.InDelta(t, 0.05, cfg.DeformationLimitM, 1e-9)
	assert.InDelta(t, 3, cfg.WindScale, 1e-9)
	assert.InDelta(t, 5000, cfg.CraneCapacityKg, 1e-9)
}

func TestParseLiftRow_OptionalColumns(t *testing.T) {
	cfg, err := parseLiftRow([]string{"1000", "50", "25", "1.3", "0.5", "0.05"})
	require.NoError(t, err)
	assert.Zero(t, cfg.WindScale)
	assert.Zero(t, cfg.ExposedAreaM2)
	assert.Zero(t, cfg.CraneCapacityKg)
}

func TestParseLiftRow_BadRow(t *testing.T) {
	_, err := parseLiftRow([]string{"1000", "50"})
	assert.Error(t, err)

	_, err = parseLiftRow([]string{"not-a-number", "50", "25", "1.3", "0.5", "0.05"})
	assert.Error(t, err)
}
