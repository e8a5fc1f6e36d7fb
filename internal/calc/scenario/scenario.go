package scenario

import (
	"strings"

	safety "Hoist/internal/calc/safety"
)

// DefaultName is the preset substituted for unknown scenario names.
const DefaultName = "default"

// presets is pure data: one complete lift configuration per named scenario.
var presets = map[string]safety.LiftConfiguration{
	DefaultName: {
		PayloadMassKg:     1000,
		PulleyMassKg:      50,
		SlingMassKg:       25,
		SafetyFactor:      1.3,
		DropHeightM:       0.5,
		DeformationLimitM: 0.05,
		WindScale:         3,
		ExposedAreaM2:     2.0,
		CraneCapacityKg:   5000,
	},
	"light_load": {
		PayloadMassKg:     200,
		PulleyMassKg:      20,
		SlingMassKg:       10,
		SafetyFactor:      1.3,
		DropHeightM:       0.3,
		DeformationLimitM: 0.05,
		WindScale:         2,
		ExposedAreaM2:     1.0,
		CraneCapacityKg:   5000,
	},
	"heavy_load": {
		PayloadMassKg:     4200,
		PulleyMassKg:      120,
		SlingMassKg:       60,
		SafetyFactor:      1.3,
		DropHeightM:       0.5,
		DeformationLimitM: 0.05,
		WindScale:         3,
		ExposedAreaM2:     4.0,
		CraneCapacityKg:   6000,
	},
	"heavy_wind": {
		PayloadMassKg:     1000,
		PulleyMassKg:      50,
		SlingMassKg:       25,
		SafetyFactor:      1.3,
		DropHeightM:       0.5,
		DeformationLimitM: 0.05,
		WindScale:         9,
		ExposedAreaM2:     3.0,
		CraneCapacityKg:   5000,
	},
	"critical": {
		PayloadMassKg:     5200,
		PulleyMassKg:      150,
		SlingMassKg:       80,
		SafetyFactor:      1.3,
		DropHeightM:       1.0,
		DeformationLimitM: 0.02,
		WindScale:         7,
		ExposedAreaM2:     5.0,
		CraneCapacityKg:   5000,
	},
}

// Config returns the preset for name, lowercased once at this boundary.
// Unknown names silently fall back to the default preset.
func Config(name string) safety.LiftConfiguration {
	cfg, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return presets[DefaultName]
	}
	return cfg
}

// Names lists the available presets.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
