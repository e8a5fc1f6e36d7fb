package recommend

import "fmt"

// Target load ratio for a recommended crane: below the near-capacity band.
const targetLoadRatio = 0.9

type CraneRecommendInput struct {
	PayloadMassKg float64 `json:"payload_mass_kg"`
	PulleyMassKg  float64 `json:"pulley_mass_kg"`
	SlingMassKg   float64 `json:"sling_mass_kg"`
	SafetyFactor  float64 `json:"safety_factor"`
}

type CraneRecommendResult struct {
	EffectiveLoadKg    float64 `json:"effective_load_kg"`
	RequiredCapacityKg float64 `json:"required_capacity_kg"`
	Notes              string  `json:"notes"`
}

func CraneCapacity(in CraneRecommendInput) (CraneRecommendResult, error) {
	if in.PayloadMassKg <= 0 {
		return CraneRecommendResult{}, fmt.Errorf("invalid payload mass")
	}
	if in.SafetyFactor <= 0 {
		in.SafetyFactor = 1.3
	}
	effective := (in.PayloadMassKg + in.PulleyMassKg + in.SlingMassKg) * in.SafetyFactor
	return CraneRecommendResult{
		EffectiveLoadKg:    effective,
		RequiredCapacityKg: effective / targetLoadRatio,
		Notes:              "Minimum crane rating keeping the factored load out of the near-capacity band.",
	}, nil
}
