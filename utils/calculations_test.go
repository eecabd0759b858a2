package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kombo16/food-health-app/models"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	assert.NoError(t, err)
	assert.InDelta(t, 22.86, bmi, 0.01)
}

func TestCalculateBMIRejectsBadInput(t *testing.T) {
	_, err := CalculateBMI(0, 70)
	assert.Error(t, err)

	_, err = CalculateBMI(175, -5)
	assert.Error(t, err)

	_, err = CalculateBMI(300, 70)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obesity class I", BMICategory(32.0))
	assert.Equal(t, "Obesity class III", BMICategory(42.0))
}

func TestMaintenanceCaloriesMaleSedentary(t *testing.T) {
	profile := &models.UserProfile{
		Age:           30,
		Gender:        models.GenderMale,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: "sedentary",
	}
	// (10*80 + 6.25*180 - 5*30 + 5) * 1.2
	assert.InDelta(t, 2136.0, MaintenanceCalories(profile), 0.001)
}

func TestMaintenanceCaloriesFemaleOffset(t *testing.T) {
	profile := &models.UserProfile{
		Age:           30,
		Gender:        models.GenderFemale,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: "sedentary",
	}
	// female BMR is 166 lower than male before the activity multiplier
	assert.InDelta(t, 2136.0-166*1.2, MaintenanceCalories(profile), 0.001)
}

func TestMaintenanceCaloriesUnknownActivityDefaultsToModerate(t *testing.T) {
	profile := &models.UserProfile{
		Age:           30,
		Gender:        models.GenderMale,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: "couch",
	}
	assert.InDelta(t, 1780*1.55, MaintenanceCalories(profile), 0.001)
}
