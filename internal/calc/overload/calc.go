package overload

import (
	physics "Hoist/internal/calc/physics"
)

type Input struct {
	LoadMassKg      float64 `json:"load_mass_kg"`
	CraneCapacityKg float64 `json:"crane_capacity_kg"`
	SafetyFactor    float64 `json:"safety_factor"`
}

type Result struct {
	EffectiveLoadKg float64 `json:"effective_load_kg"`
	LoadRatio       float64 `json:"load_ratio"`
	Safe            bool    `json:"safe"`
	Notes           string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.CraneCapacityKg <= 0 {
		return Result{}, &physics.DomainError{Param: "crane_capacity_kg", Value: in.CraneCapacityKg}
	}
	if in.SafetyFactor <= 0 {
		in.SafetyFactor = 1.0
	}
	effective := in.LoadMassKg * in.SafetyFactor
	return Result{
		EffectiveLoadKg: effective,
		LoadRatio:       effective / in.CraneCapacityKg,
		Safe:            physics.CheckOverload(in.LoadMassKg, in.CraneCapacityKg, in.SafetyFactor),
		Notes:           "Factored load compared against rated crane capacity.",
	}, nil
}
