package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kombo16/food-health-app/models"
)

type stubProvider struct{ facts map[string]*models.NutritionFact }

func (s *stubProvider) GetFoodNutrition(name string) *models.NutritionFact {
	fact, ok := s.facts[name]
	if !ok {
		return nil
	}
	out := *fact
	return &out
}

type capturingLifestyleStore struct {
	calls   int
	userID  uint
	risks   []models.DiseaseRisk
	overall float64
}

func (c *capturingLifestyleStore) SaveAssessment(userID uint, profile *models.UserProfile, pattern *models.DietaryPattern, risks []models.DiseaseRisk, overallScore float64) error {
	c.calls++
	c.userID = userID
	c.risks = risks
	c.overall = overallScore
	return nil
}

func TestAnalyzeDietaryIntakeSinglePortion(t *testing.T) {
	svc := NewDiseaseService(&stubProvider{facts: map[string]*models.NutritionFact{
		"pizza": {FoodName: "pizza", CaloriesPer100g: 266, SugarG: 3.6, SaturatedFatG: 4.5, SodiumMg: 598},
	}}, nil)

	// one 100g portion over one day comes back unchanged
	intake := svc.AnalyzeDietaryIntake(&models.DietaryPattern{
		DailyFoods:    []string{"pizza"},
		PortionSizesG: []float64{100},
		DaysTracked:   1,
	})
	assert.InDelta(t, 266, intake.Calories, 0.001)
	assert.InDelta(t, 3.6, intake.SugarG, 0.001)
	assert.InDelta(t, 4.5, intake.SaturatedFatG, 0.001)
	assert.InDelta(t, 598, intake.SodiumMg, 0.001)
}

func TestAnalyzeDietaryIntakeScalesAndAverages(t *testing.T) {
	svc := NewDiseaseService(&stubProvider{facts: map[string]*models.NutritionFact{
		"pizza": {FoodName: "pizza", CaloriesPer100g: 266, SodiumMg: 598},
	}}, nil)

	// two 200g portions over two days averages to one 200g portion per day
	intake := svc.AnalyzeDietaryIntake(&models.DietaryPattern{
		DailyFoods:    []string{"pizza", "pizza"},
		PortionSizesG: []float64{200, 200},
		DaysTracked:   2,
	})
	assert.InDelta(t, 532, intake.Calories, 0.001)
	assert.InDelta(t, 1196, intake.SodiumMg, 0.001)
}

func TestAnalyzeDietaryIntakeSkipsUnknownFoods(t *testing.T) {
	svc := NewDiseaseService(&stubProvider{facts: map[string]*models.NutritionFact{
		"apple": {FoodName: "apple", CaloriesPer100g: 52, SugarG: 10.4},
	}}, nil)

	intake := svc.AnalyzeDietaryIntake(&models.DietaryPattern{
		DailyFoods:    []string{"apple", "unobtainium"},
		PortionSizesG: []float64{100, 100},
		DaysTracked:   1,
	})
	assert.InDelta(t, 52, intake.Calories, 0.001)
	assert.InDelta(t, 10.4, intake.SugarG, 0.001)
}

func TestPredictDiabetesRiskFamilyHistoryMultiplies(t *testing.T) {
	svc := NewDiseaseService(&stubProvider{}, nil)
	profile := &models.UserProfile{
		Age:      50,
		Gender:   models.GenderMale,
		WeightKg: 98,
		HeightCm: 175, // BMI 32.0
	}
	intake := models.DailyIntake{SugarG: 100}

	risk := svc.predictDiabetesRisk(profile, intake)

	// (30 obesity + 10 age + 25 capped sugar) * 1.5 family history
	assert.Equal(t, models.DiseaseDiabetes, risk.DiseaseName)
	assert.InDelta(t, 65, risk.RiskPercentage, 0.001)

	profile.FamilyHistory = []string{"Diabetes"}
	risk = svc.predictDiabetesRisk(profile, intake)
	assert.InDelta(t, 97.5, risk.RiskPercentage, 0.001)
	assert.Equal(t, models.RiskLevelVeryHigh, risk.RiskLevel)
	assert.Contains(t, risk.ContributingFactors, "Obesity (BMI >= 30)")
	assert.Contains(t, risk.ContributingFactors, "Age >= 45 years")
	assert.Contains(t, risk.ContributingFactors, "High sugar intake (100.0g/day)")
	assert.Contains(t, risk.ContributingFactors, "Family history of diabetes")
}

func TestPredictDiabetesRiskSugarContributionIsCapped(t *testing.T) {
	svc := NewDiseaseService(&stubProvider{}, nil)
	profile := &models.UserProfile{Age: 30, Gender: models.GenderFemale, WeightKg: 60, HeightCm: 170}

	moderate := svc.predictDiabetesRisk(profile, models.DailyIntake{SugarG: 60})
	assert.InDelta(t, 5, moderate.RiskPercentage, 0.001) // (60-50)*0.5

	extreme := svc.predictDiabetesRisk(profile, models.DailyIntake{SugarG: 500})
	assert.InDelta(t, 25, extreme.RiskPercentage, 0.001)
}

func TestPredictHypertensionRiskFamilyHistoryIsFlatBonus(t *testing.T) {
	svc := NewDiseaseService(&stubProvider{}, nil)
	profile := &models.UserProfile{
		Age:      50,
		Gender:   models.GenderFemale, // under the female age threshold of 55
		WeightKg: 60,
		HeightCm: 170,
	}
	intake := models.DailyIntake{SodiumMg: 4300}

	risk := svc.predictHypertensionRisk(profile, intake)
	assert.InDelta(t, 20, risk.RiskPercentage, 0.001) // (4300-2300)*0.01

	profile.FamilyHistory = []string{"high blood pressure"}
	risk = svc.predictHypertensionRisk(profile, intake)
	assert.InDelta(t, 35, risk.RiskPercentage, 0.001)
	assert.Equal(t, models.RiskLevelModerate, risk.RiskLevel)
	assert.Contains(t, risk.ContributingFactors, "High sodium intake (4300mg/day)")
	assert.Contains(t, risk.ContributingFactors, "Family history of hypertension")
}

func TestPredictHypertensionRiskAgeThresholdDependsOnGender(t *testing.T) {
	svc := NewDiseaseService(&stubProvider{}, nil)

	male := svc.predictHypertensionRisk(&models.UserProfile{
		Age: 45, Gender: models.GenderMale, WeightKg: 60, HeightCm: 170,
	}, models.DailyIntake{})
	assert.InDelta(t, 15, male.RiskPercentage, 0.001)
	assert.Contains(t, male.ContributingFactors, "Age >= 45 years")

	female := svc.predictHypertensionRisk(&models.UserProfile{
		Age: 45, Gender: models.GenderFemale, WeightKg: 60, HeightCm: 170,
	}, models.DailyIntake{})
	assert.InDelta(t, 0, female.RiskPercentage, 0.001)
}

func TestPredictHeartDiseaseRiskFamilyHistoryMatchesSubstrings(t *testing.T) {
	svc := NewDiseaseService(&stubProvider{}, nil)
	profile := &models.UserProfile{
		Age:      50,
		Gender:   models.GenderMale,
		WeightKg: 83,
		HeightCm: 175, // BMI 27.1
	}
	intake := models.DailyIntake{SaturatedFatG: 20, SodiumMg: 3000}

	risk := svc.predictHeartDiseaseRisk(profile, intake)
	// 10 age + 15 bmi + 14 sat fat excess + 10 sodium
	assert.InDelta(t, 49, risk.RiskPercentage, 0.001)

	profile.FamilyHistory = []string{"Father had a Heart Attack at 60"}
	risk = svc.predictHeartDiseaseRisk(profile, intake)
	assert.InDelta(t, 98, risk.RiskPercentage, 0.001)
	assert.Equal(t, models.RiskLevelVeryHigh, risk.RiskLevel)
	assert.Contains(t, risk.ContributingFactors, "Family history of heart disease")
}

func TestRiskLevelBandsAreUpperExclusive(t *testing.T) {
	assert.Equal(t, models.RiskLevelLow, riskLevel(19.99, 20, 40, 70))
	assert.Equal(t, models.RiskLevelModerate, riskLevel(20, 20, 40, 70))
	assert.Equal(t, models.RiskLevelHigh, riskLevel(40, 20, 40, 70))
	assert.Equal(t, models.RiskLevelVeryHigh, riskLevel(70, 20, 40, 70))

	assert.Equal(t, models.RiskLevelLow, riskLevel(24.99, 25, 50, 75))
	assert.Equal(t, models.RiskLevelModerate, riskLevel(25, 25, 50, 75))
	assert.Equal(t, models.RiskLevelVeryHigh, riskLevel(100, 25, 50, 75))
}

func TestAssessLifestyleDiseaseRiskOverallScore(t *testing.T) {
	store := &capturingLifestyleStore{}
	svc := NewDiseaseService(&stubProvider{}, store)

	profile := &models.UserProfile{
		Age:           50,
		Gender:        models.GenderMale,
		WeightKg:      83,
		HeightCm:      175, // BMI 27.1
		ActivityLevel: "sedentary",
	}
	pattern := &models.DietaryPattern{DaysTracked: 1}

	result := svc.AssessLifestyleDiseaseRisk(42, profile, pattern)
	require.Len(t, result.DiseaseRisks, 3)

	// diabetes 25 (overweight + age), hypertension 35 (age + overweight),
	// heart disease 25 (age + overweight); weighted sum scaled by 100
	assert.InDelta(t, 2850, result.OverallRiskScore, 0.001)
	assert.Equal(t, models.DietaryFactors{}, result.KeyDietaryFactors)
	assert.Empty(t, result.InterventionPriority)

	assert.Equal(t, 1, store.calls)
	assert.Equal(t, uint(42), store.userID)
	assert.InDelta(t, result.OverallRiskScore, store.overall, 0.001)
	assert.Len(t, store.risks, 3)
}

func TestAssessLifestyleDiseaseRiskInterventionOrder(t *testing.T) {
	svc := NewDiseaseService(&stubProvider{facts: map[string]*models.NutritionFact{
		"mega meal": {FoodName: "mega meal", CaloriesPer100g: 4000, SugarG: 100, SaturatedFatG: 30, SodiumMg: 5000},
	}}, nil)

	profile := &models.UserProfile{
		Age:           30,
		Gender:        models.GenderMale,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: "sedentary",
	}
	pattern := &models.DietaryPattern{
		DailyFoods:    []string{"mega meal"},
		PortionSizesG: []float64{100},
		DaysTracked:   1,
	}

	result := svc.AssessLifestyleDiseaseRisk(0, profile, pattern)
	assert.Equal(t, []string{
		"Reduce sodium intake (high priority)",
		"Reduce saturated fat intake",
		"Reduce sugar intake",
		"Reduce caloric intake",
	}, result.InterventionPriority)
	assert.InDelta(t, 2700, result.KeyDietaryFactors.ExcessSodium, 0.001)
	assert.InDelta(t, 50, result.KeyDietaryFactors.ExcessSugar, 0.001)
	assert.InDelta(t, 17, result.KeyDietaryFactors.ExcessSaturatedFat, 0.001)
	assert.InDelta(t, 4000-2136, result.KeyDietaryFactors.ExcessCalories, 0.001)
}
