package utils

import (
	"errors"

	"github.com/Kombo16/food-health-app/models"
)

// Activity-level multipliers applied on top of the Mifflin-St Jeor BMR.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 20 || weightKg > 500 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// MaintenanceCalories estimates daily energy expenditure from the
// Mifflin-St Jeor BMR scaled by the profile's activity level. Unrecognized
// activity levels fall back to the moderate multiplier.
func MaintenanceCalories(profile *models.UserProfile) float64 {
	var bmr float64
	if profile.Gender == models.GenderMale {
		bmr = 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age) + 5
	} else {
		bmr = 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age) - 161
	}

	mult, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		mult = 1.55
	}
	return bmr * mult
}
