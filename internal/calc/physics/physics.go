package physics

import "fmt"

const (
	// GravityMPS2 is standard gravity, also the N-to-kgf divisor.
	GravityMPS2 = 9.81
	// AirDensityKGM3 is the sea-level air density used by the standard wind path.
	AirDensityKGM3 = 1.225
	// DefaultDragCoefficient for a bluff suspended load.
	DefaultDragCoefficient = 1.0
)

// DomainError reports a physically meaningless input, typically a
// non-positive denominator.
type DomainError struct {
	Param string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s = %g must be positive", e.Param, e.Value)
}

// ImpactForce estimates the peak force of a drop arrested over a stopping
// distance: F = m*g*h/d. A zero height is a valid no-drop case.
func ImpactForce(massKg, heightM, deformationM float64) (float64, error) {
	if deformationM <= 0 {
		return 0, &DomainError{Param: "deformation_limit_m", Value: deformationM}
	}
	return massKg * GravityMPS2 * heightM / deformationM, nil
}

// NewtonsToKgf converts newtons to kilogram-force for operator-friendly output.
func NewtonsToKgf(forceN float64) float64 {
	return forceN / GravityMPS2
}

// WindForce is drag force at sea-level air density with the default
// coefficient: 0.5 * rho * v^2 * A.
func WindForce(speedMps, areaM2 float64) float64 {
	return WindForceAtDensity(speedMps, areaM2, DefaultDragCoefficient, AirDensityKGM3)
}

// WindForceWithDrag is WindForce with an explicit drag coefficient.
func WindForceWithDrag(speedMps, areaM2, dragCoefficient float64) float64 {
	return WindForceAtDensity(speedMps, areaM2, dragCoefficient, AirDensityKGM3)
}

// WindForceAtDensity exposes the air density, which the model-parameter path
// treats as a variable rather than a constant.
func WindForceAtDensity(speedMps, areaM2, dragCoefficient, airDensityKGM3 float64) float64 {
	return 0.5 * airDensityKGM3 * speedMps * speedMps * areaM2 * dragCoefficient
}

// CheckOverload reports whether the factored load fits within crane capacity.
func CheckOverload(loadMassKg, capacityKg, safetyFactor float64) bool {
	return loadMassKg*safetyFactor <= capacityKg
}
