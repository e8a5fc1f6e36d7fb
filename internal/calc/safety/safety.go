package safety

import (
	"fmt"

	physics "Hoist/internal/calc/physics"
)

// Risk classification labels, from least to most severe.
const (
	RiskLow          = "LOW"
	RiskMedium       = "MEDIUM"
	RiskHighCapacity = "HIGH (near capacity)"
	RiskHighWind     = "HIGH (dangerous wind)"
	RiskCritical     = "CRITICAL"
)

// Classification thresholds over the load ratio and wind conditions.
const (
	criticalLoadRatio  = 1.0
	highLoadRatio      = 0.9
	mediumLoadRatio    = 0.75
	dangerousWindSpeed = 20.0 // m/s
	dangerousWindScale = 8.0  // Beaufort gale
)

// LiftConfiguration describes one planned lift. Consumed whole per
// evaluation, never mutated.
type LiftConfiguration struct {
	PayloadMassKg     float64 `json:"payload_mass_kg"`
	PulleyMassKg      float64 `json:"pulley_mass_kg"`
	SlingMassKg       float64 `json:"sling_mass_kg"`
	SafetyFactor      float64 `json:"safety_factor"`
	DropHeightM       float64 `json:"drop_height_m"`
	DeformationLimitM float64 `json:"deformation_limit_m"`
	WindScale         float64 `json:"wind_scale"`
	ExposedAreaM2     float64 `json:"exposed_area_m2"`
	CraneCapacityKg   float64 `json:"crane_capacity_kg"`
	// DragCoefficient is optional; zero means the default bluff-body value.
	DragCoefficient float64 `json:"drag_coefficient,omitempty"`
}

// SafetyReport is the full verdict for one configuration, rebuilt from
// scratch on every call.
type SafetyReport struct {
	TotalMassKg     float64  `json:"total_mass_kg"`
	ImpactForceN    float64  `json:"impact_force_n"`
	ImpactForceKgf  float64  `json:"impact_force_kgf"`
	EffectiveLoadKg float64  `json:"effective_load_kg"`
	LoadRatio       float64  `json:"load_ratio"`
	OverloadSafe    bool     `json:"overload_safe"`
	WindSpeedMps    float64  `json:"wind_speed_mps"`
	WindDescription string   `json:"wind_description"`
	WindForceN      float64  `json:"wind_force_n"`
	RiskLevel       string   `json:"risk_level"`
	SafeToLift      bool     `json:"safe_to_lift"`
	Warnings        []string `json:"warnings,omitempty"`
}

// Evaluate computes the complete safety report for one lift. It is atomic:
// any invalid denominator fails the whole evaluation with no partial result.
func Evaluate(cfg LiftConfiguration) (SafetyReport, error) {
	if cfg.PayloadMassKg <= 0 {
		return SafetyReport{}, fmt.Errorf("invalid payload mass")
	}
	if cfg.SafetyFactor <= 0 {
		return SafetyReport{}, fmt.Errorf("invalid safety factor")
	}
	if cfg.CraneCapacityKg <= 0 {
		return SafetyReport{}, &physics.DomainError{Param: "crane_capacity_kg", Value: cfg.CraneCapacityKg}
	}

	totalMass := cfg.PayloadMassKg + cfg.PulleyMassKg + cfg.SlingMassKg

	impactN, err := physics.ImpactForce(totalMass, cfg.DropHeightM, cfg.DeformationLimitM)
	if err != nil {
		return SafetyReport{}, err
	}

	effectiveLoad := totalMass * cfg.SafetyFactor
	loadRatio := effectiveLoad / cfg.CraneCapacityKg

	drag := cfg.DragCoefficient
	if drag <= 0 {
		drag = physics.DefaultDragCoefficient
	}
	windSpeed := physics.BeaufortToWindSpeed(cfg.WindScale)

	report := SafetyReport{
		TotalMassKg:     totalMass,
		ImpactForceN:    impactN,
		ImpactForceKgf:  physics.NewtonsToKgf(impactN),
		EffectiveLoadKg: effectiveLoad,
		LoadRatio:       loadRatio,
		OverloadSafe:    physics.CheckOverload(totalMass, cfg.CraneCapacityKg, cfg.SafetyFactor),
		WindSpeedMps:    windSpeed,
		WindDescription: physics.BeaufortDescription(cfg.WindScale),
		WindForceN:      physics.WindForceWithDrag(windSpeed, cfg.ExposedAreaM2, drag),
	}

	// The go/no-go flag follows overload status only; wind raises the risk
	// level but never flips the flag.
	report.SafeToLift = report.OverloadSafe
	report.RiskLevel = classify(loadRatio, windSpeed, cfg.WindScale)

	if !physics.BeaufortInRange(cfg.WindScale) {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("wind scale %g outside Beaufort 0-12, speed extrapolated", cfg.WindScale))
	}
	return report, nil
}

// classify picks the risk label, first match wins. Order matters: overload
// outranks wind, wind outranks a moderately loaded hook.
func classify(loadRatio, windSpeed, windScale float64) string {
	switch {
	case loadRatio > criticalLoadRatio:
		return RiskCritical
	case loadRatio > highLoadRatio:
		return RiskHighCapacity
	case windSpeed > dangerousWindSpeed || windScale >= dangerousWindScale:
		return RiskHighWind
	case loadRatio > mediumLoadRatio:
		return RiskMedium
	default:
		return RiskLow
	}
}
