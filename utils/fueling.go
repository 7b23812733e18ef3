package utils

import "errors"

// RecommendHourlyCarbs expects the event duration in seconds and returns a
// suggested carbohydrate intake in grams per hour, following the usual
// endurance-fueling bands.
func RecommendHourlyCarbs(durationSeconds int) (float64, error) {
	if durationSeconds <= 0 {
		return 0, errors.New("duration must be positive")
	}
	switch {
	case durationSeconds <= 3600:
		return 30, nil
	case durationSeconds <= 2*3600:
		return 60, nil
	case durationSeconds <= 3*3600:
		return 90, nil
	default:
		// beyond ~3h gut training and mixed carb sources allow more
		return 110, nil
	}
}

// RecommendHourlyFluidMl suggests fluid intake in ml per hour, scaled by
// body weight when known. weightKg <= 0 falls back to a neutral default.
func RecommendHourlyFluidMl(weightKg float64) float64 {
	if weightKg <= 0 {
		return 600
	}
	ml := weightKg * 8
	if ml < 400 {
		return 400
	}
	if ml > 1000 {
		return 1000
	}
	return ml
}

// FuelingBand names the effort class a duration falls into.
func FuelingBand(durationSeconds int) string {
	switch {
	case durationSeconds <= 3600:
		return "Short"
	case durationSeconds <= 3*3600:
		return "Middle distance"
	default:
		return "Ultra / long course"
	}
}
