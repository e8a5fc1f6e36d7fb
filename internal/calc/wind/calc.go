package wind

import (
	"fmt"

	physics "Hoist/internal/calc/physics"
)

type Input struct {
	WindScale       float64 `json:"wind_scale"`
	ExposedAreaM2   float64 `json:"exposed_area_m2"`
	DragCoefficient float64 `json:"drag_coefficient"`
	AirDensityKGM3  float64 `json:"air_density_kg_m3"`
}

type Result struct {
	WindSpeedMps float64 `json:"wind_speed_mps"`
	WindForceN   float64 `json:"wind_force_n"`
	Description  string  `json:"description"`
	Warning      string  `json:"warning,omitempty"`
	Notes        string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.ExposedAreaM2 < 0 {
		return Result{}, fmt.Errorf("invalid exposed area")
	}
	if in.DragCoefficient <= 0 {
		in.DragCoefficient = physics.DefaultDragCoefficient
	}
	if in.AirDensityKGM3 <= 0 {
		in.AirDensityKGM3 = physics.AirDensityKGM3
	}

	speed := physics.BeaufortToWindSpeed(in.WindScale)
	res := Result{
		WindSpeedMps: speed,
		WindForceN:   physics.WindForceAtDensity(speed, in.ExposedAreaM2, in.DragCoefficient, in.AirDensityKGM3),
		Description:  physics.BeaufortDescription(in.WindScale),
		Notes:        "Drag force on the exposed face of a suspended load.",
	}
	if !physics.BeaufortInRange(in.WindScale) {
		res.Warning = fmt.Sprintf("wind scale %g outside Beaufort 0-12, speed extrapolated", in.WindScale)
	}
	return res, nil
}
