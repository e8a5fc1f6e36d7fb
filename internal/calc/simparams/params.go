package simparams

import (
	"fmt"

	physics "Hoist/internal/calc/physics"
	safety "Hoist/internal/calc/safety"
)

// Input extends a lift configuration with the payload geometry the 3D
// block-diagram model needs. Air density is a free parameter on this path.
type Input struct {
	Config         safety.LiftConfiguration `json:"config"`
	PayloadLengthM float64                  `json:"payload_length_m"`
	PayloadWidthM  float64                  `json:"payload_width_m"`
	PayloadHeightM float64                  `json:"payload_height_m"`
	AirDensityKGM3 float64                  `json:"air_density_kg_m3"`
}

// Result carries the flat workspace-variable map the external model consumes
// plus the manual assembly steps for the operator. The model itself is an
// opaque collaborator; only names and numbers cross this boundary.
type Result struct {
	Parameters   map[string]float64 `json:"parameters"`
	Instructions []string           `json:"instructions"`
	Notes        string             `json:"notes"`
}

func Build(in Input) (Result, error) {
	if in.Config.PayloadMassKg <= 0 {
		return Result{}, fmt.Errorf("invalid payload mass")
	}
	volume := in.PayloadLengthM * in.PayloadWidthM * in.PayloadHeightM
	if volume <= 0 {
		return Result{}, &physics.DomainError{Param: "payload_volume_m3", Value: volume}
	}
	airDensity := in.AirDensityKGM3
	if airDensity <= 0 {
		airDensity = physics.AirDensityKGM3
	}

	windSpeed := physics.BeaufortToWindSpeed(in.Config.WindScale)
	drag := in.Config.DragCoefficient
	if drag <= 0 {
		drag = physics.DefaultDragCoefficient
	}

	params := map[string]float64{
		"payload_mass":    in.Config.PayloadMassKg,
		"payload_length":  in.PayloadLengthM,
		"payload_width":   in.PayloadWidthM,
		"payload_height":  in.PayloadHeightM,
		"payload_volume":  volume,
		"payload_density": in.Config.PayloadMassKg / volume,
		"pulley_mass":     in.Config.PulleyMassKg,
		"sling_mass":      in.Config.SlingMassKg,
		"gravity":         physics.GravityMPS2,
		"air_density":     airDensity,
		"drag_coeff":      drag,
		"wind_speed":      windSpeed,
		"wind_force":      physics.WindForceAtDensity(windSpeed, in.Config.ExposedAreaM2, drag, airDensity),
		"exposed_area":    in.Config.ExposedAreaM2,
		"drop_height":     in.Config.DropHeightM,
	}

	return Result{
		Parameters: params,
		Instructions: []string{
			"Load the parameter names above as workspace variables before opening the model.",
			"Insert a solid block for the payload and set its density to payload_density.",
			"Attach the hoist joint at the payload top face and set the cable start height to drop_height.",
			"Apply wind_force as an external force on the exposed face, aligned with the wind axis.",
			"Run the animation and confirm the payload settles without cable slack.",
		},
		Notes: "Workspace variables for the external 3D lift model; physics runs in the model, not here.",
	}, nil
}
