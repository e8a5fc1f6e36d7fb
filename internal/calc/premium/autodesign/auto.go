package autodesign

import (
	"fmt"

	physics "Hoist/internal/calc/physics"
)

// Smallest deformation limit worth recommending; stiffer arrests are not
// realistic for soft rigging.
const minDeformationM = 0.005

type DamperAutoInput struct {
	MassKg          float64 `json:"mass_kg"`
	DropHeightM     float64 `json:"drop_height_m"`
	TargetImpactKgf float64 `json:"target_impact_kgf"`
}

type DamperAutoResult struct {
	RequiredDeformationM float64 `json:"required_deformation_m"`
	ImpactForceN         float64 `json:"impact_force_n"`
	ImpactForceKgf       float64 `json:"impact_force_kgf"`
	Notes                string  `json:"notes"`
}

// Damper sizes the stopping distance so a drop stays under the target
// peak force.
func Damper(in DamperAutoInput) (DamperAutoResult, error) {
	if in.MassKg <= 0 || in.DropHeightM <= 0 || in.TargetImpactKgf <= 0 {
		return DamperAutoResult{}, fmt.Errorf("invalid input")
	}
	// F = m*g*h/d  =>  d = m*g*h/F
	targetN := in.TargetImpactKgf * physics.GravityMPS2
	d := in.MassKg * physics.GravityMPS2 * in.DropHeightM / targetN
	if d < minDeformationM {
		d = minDeformationM
	}
	forceN, err := physics.ImpactForce(in.MassKg, in.DropHeightM, d)
	if err != nil {
		return DamperAutoResult{}, err
	}
	return DamperAutoResult{
		RequiredDeformationM: d,
		ImpactForceN:         forceN,
		ImpactForceKgf:       physics.NewtonsToKgf(forceN),
		Notes:                "Stopping distance selected to keep the arrest force at the target.",
	}, nil
}
