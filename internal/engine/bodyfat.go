package engine

import "math"

// Gender labels for the body-fat estimation.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// BodyFatPercent estimates body-fat percentage with the US Navy tape method.
// All measurements are centimetres; hips is ignored for males. The second
// return is false when the inputs cannot produce an estimate: non-positive
// measurements, or girths that make the logarithm argument non-positive.
func BodyFatPercent(gender string, waist, neck, height, hips float64) (float64, bool) {
	if waist <= 0 || neck <= 0 || height <= 0 {
		return 0, false
	}
	if gender == GenderMale {
		if waist <= neck {
			return 0, false
		}
		return 86.010*math.Log10(waist-neck) - 70.041*math.Log10(height) + 36.76, true
	}
	if hips <= 0 || waist+hips <= neck {
		return 0, false
	}
	return 163.205*math.Log10(waist+hips-neck) - 97.684*math.Log10(height) - 78.387, true
}

// BodyFatCategory labels a body-fat percentage using the per-gender cutoffs
// of the Navy method's reference bands.
func BodyFatCategory(gender string, bf float64) string {
	if gender == GenderMale {
		switch {
		case bf < 6:
			return "Essential Fat"
		case bf < 14:
			return "Athletic"
		case bf < 18:
			return "Fitness"
		case bf < 25:
			return "Average"
		default:
			return "Obese"
		}
	}
	switch {
	case bf < 14:
		return "Essential Fat"
	case bf < 21:
		return "Athletic"
	case bf < 25:
		return "Fitness"
	case bf < 32:
		return "Average"
	default:
		return "Obese"
	}
}

// RoundTenth rounds to one decimal place, the precision stored for body
// composition readings.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
