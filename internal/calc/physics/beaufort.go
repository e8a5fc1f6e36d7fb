package physics

import "math"

// MinBeaufort and MaxBeaufort bound the defined Beaufort scale.
const (
	MinBeaufort = 0
	MaxBeaufort = 12
)

var beaufortDescriptions = [13]string{
	"Calm",
	"Light air",
	"Light breeze",
	"Gentle breeze",
	"Moderate breeze",
	"Fresh breeze",
	"Strong breeze",
	"High wind",
	"Gale",
	"Strong gale",
	"Storm",
	"Violent storm",
	"Hurricane force",
}

// BeaufortToWindSpeed converts a Beaufort rating to wind speed in m/s using
// the empirical power law v = 0.836 * B^1.5. Values outside 0..12 are
// extrapolated, not clamped; callers decide whether to warn.
func BeaufortToWindSpeed(scale float64) float64 {
	if scale < 0 {
		// B^1.5 is undefined for negative B; mirror the magnitude so the
		// extrapolation stays real-valued.
		return -0.836 * math.Pow(-scale, 1.5)
	}
	return 0.836 * math.Pow(scale, 1.5)
}

// BeaufortInRange reports whether the rating lies on the defined 0..12 scale.
func BeaufortInRange(scale float64) bool {
	return scale >= MinBeaufort && scale <= MaxBeaufort
}

// BeaufortDescription returns the text name of the nearest defined rating.
// Unlike BeaufortToWindSpeed, out-of-range values clamp to the table ends.
func BeaufortDescription(scale float64) string {
	idx := int(math.Round(scale))
	if idx < MinBeaufort {
		idx = MinBeaufort
	}
	if idx > MaxBeaufort {
		idx = MaxBeaufort
	}
	return beaufortDescriptions[idx]
}
