package impact

import (
	"fmt"

	physics "Hoist/internal/calc/physics"
)

type Input struct {
	MassKg       float64 `json:"mass_kg"`
	DropHeightM  float64 `json:"drop_height_m"`
	DeformationM float64 `json:"deformation_limit_m"`
}

type Result struct {
	ImpactForceN   float64 `json:"impact_force_n"`
	ImpactForceKgf float64 `json:"impact_force_kgf"`
	Notes          string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.MassKg <= 0 {
		return Result{}, fmt.Errorf("invalid mass")
	}
	if in.DropHeightM < 0 {
		return Result{}, fmt.Errorf("invalid drop height")
	}
	forceN, err := physics.ImpactForce(in.MassKg, in.DropHeightM, in.DeformationM)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ImpactForceN:   forceN,
		ImpactForceKgf: physics.NewtonsToKgf(forceN),
		Notes:          "Peak arrest force for a free drop stopped over the deformation limit.",
	}, nil
}
