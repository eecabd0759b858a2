package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Kombo16/food-health-app/models"
	"github.com/Kombo16/food-health-app/utils"
)

// FoodNutritionProvider resolves a food name to its canonical facts, nil when
// the food is unknown everywhere.
type FoodNutritionProvider interface {
	GetFoodNutrition(foodName string) *models.NutritionFact
}

// LifestyleStore persists completed assessments, best-effort.
type LifestyleStore interface {
	SaveAssessment(userID uint, profile *models.UserProfile, pattern *models.DietaryPattern, risks []models.DiseaseRisk, overallScore float64) error
}

// Daily intake baselines (WHO/AHA guidance for a 2000 kcal diet).
const (
	dailySugarLimitG   = 50.0
	dailySatFatLimitG  = 13.0
	dailySodiumLimitMg = 2300.0
)

const (
	diabetesFamilyMultiplier     = 1.5
	heartDiseaseFamilyMultiplier = 2.0
)

// Per-disease weights for the overall score. They sum to 1.0.
var diseaseWeights = map[string]float64{
	models.DiseaseDiabetes:     0.3,
	models.DiseaseHypertension: 0.35,
	models.DiseaseHeartDisease: 0.35,
}

// DiseaseService combines a user profile with aggregated dietary intake into
// deterministic, rule-based disease risk scores.
type DiseaseService struct {
	nutrition FoodNutritionProvider
	store     LifestyleStore
}

func NewDiseaseService(nutrition FoodNutritionProvider, store LifestyleStore) *DiseaseService {
	return &DiseaseService{nutrition: nutrition, store: store}
}

// AssessLifestyleDiseaseRisk runs the full assessment: intake aggregation,
// per-disease scoring, overall score, key dietary factors, and intervention
// priorities. userID is zero for anonymous callers. Persistence failures are
// logged and the in-memory result is returned regardless.
func (s *DiseaseService) AssessLifestyleDiseaseRisk(userID uint, profile *models.UserProfile, pattern *models.DietaryPattern) *models.LifestyleDiseaseAssessment {
	intake := s.AnalyzeDietaryIntake(pattern)

	risks := []models.DiseaseRisk{
		s.predictDiabetesRisk(profile, intake),
		s.predictHypertensionRisk(profile, intake),
		s.predictHeartDiseaseRisk(profile, intake),
	}

	// Weighted sum scaled by 100. The weights sum to 1.0 and the per-disease
	// percentages are already 0-100, so the headline number is not bounded by
	// 100.
	overallScore := 0.0
	for _, risk := range risks {
		overallScore += risk.RiskPercentage * diseaseWeights[risk.DiseaseName]
	}
	overallScore *= 100

	maintenance := utils.MaintenanceCalories(profile)
	factors := models.DietaryFactors{
		ExcessCalories:     math.Max(0, intake.Calories-maintenance),
		ExcessSugar:        math.Max(0, intake.SugarG-dailySugarLimitG),
		ExcessSaturatedFat: math.Max(0, intake.SaturatedFatG-dailySatFatLimitG),
		ExcessSodium:       math.Max(0, intake.SodiumMg-dailySodiumLimitMg),
	}

	var priorities []string
	if factors.ExcessSodium > 500 {
		priorities = append(priorities, "Reduce sodium intake (high priority)")
	}
	if factors.ExcessSaturatedFat > 5 {
		priorities = append(priorities, "Reduce saturated fat intake")
	}
	if factors.ExcessSugar > 20 {
		priorities = append(priorities, "Reduce sugar intake")
	}
	if factors.ExcessCalories > 300 {
		priorities = append(priorities, "Reduce caloric intake")
	}

	if s.store != nil {
		if err := s.store.SaveAssessment(userID, profile, pattern, risks, overallScore); err != nil {
			logrus.WithError(err).Warn("failed to save lifestyle assessment")
		}
	}

	return &models.LifestyleDiseaseAssessment{
		UserProfile:          *profile,
		DietaryPattern:       *pattern,
		DiseaseRisks:         risks,
		OverallRiskScore:     overallScore,
		KeyDietaryFactors:    factors,
		InterventionPriority: priorities,
	}
}

// AnalyzeDietaryIntake sums each food's per-100g values scaled by portion
// size, then divides by the number of tracked days to get a daily average.
// Foods that resolve nowhere contribute nothing.
func (s *DiseaseService) AnalyzeDietaryIntake(pattern *models.DietaryPattern) models.DailyIntake {
	var total models.DailyIntake

	for i, food := range pattern.DailyFoods {
		fact := s.nutrition.GetFoodNutrition(food)
		if fact == nil {
			continue
		}
		portionFactor := pattern.PortionSizesG[i] / 100
		total.Calories += fact.CaloriesPer100g * portionFactor
		total.SugarG += fact.SugarG * portionFactor
		total.SaturatedFatG += fact.SaturatedFatG * portionFactor
		total.SodiumMg += fact.SodiumMg * portionFactor
	}

	days := float64(pattern.DaysTracked)
	if days < 1 {
		days = 1
	}
	total.Calories /= days
	total.SugarG /= days
	total.SaturatedFatG /= days
	total.SodiumMg /= days

	return total
}

func (s *DiseaseService) predictDiabetesRisk(profile *models.UserProfile, intake models.DailyIntake) models.DiseaseRisk {
	score := 0.0
	var factors []string

	bmi, _ := utils.CalculateBMI(profile.HeightCm, profile.WeightKg)
	if bmi >= 30 {
		score += 30
		factors = append(factors, "Obesity (BMI >= 30)")
	} else if bmi >= 25 {
		score += 15
		factors = append(factors, "Overweight (BMI 25-29.9)")
	}

	if profile.Age >= 45 {
		score += 10
		factors = append(factors, "Age >= 45 years")
	}

	if intake.SugarG > dailySugarLimitG {
		excess := intake.SugarG - dailySugarLimitG
		score += math.Min(25, excess*0.5)
		factors = append(factors, fmt.Sprintf("High sugar intake (%.1fg/day)", intake.SugarG))
	}

	if familyHistoryContains(profile.FamilyHistory, "diabetes") {
		score *= diabetesFamilyMultiplier
		factors = append(factors, "Family history of diabetes")
	}

	pct := math.Min(100, score)
	return models.DiseaseRisk{
		DiseaseName:         models.DiseaseDiabetes,
		RiskPercentage:      pct,
		RiskLevel:           riskLevel(pct, 20, 40, 70),
		ContributingFactors: factors,
		Recommendations: []string{
			"Reduce daily sugar intake to <50g",
			"Maintain healthy weight (BMI 18.5-24.9)",
			"Exercise regularly (150+ minutes/week)",
			"Monitor blood glucose levels",
		},
	}
}

func (s *DiseaseService) predictHypertensionRisk(profile *models.UserProfile, intake models.DailyIntake) models.DiseaseRisk {
	score := 0.0
	var factors []string

	ageThreshold := 55
	if profile.Gender == models.GenderMale {
		ageThreshold = 45
	}
	if profile.Age >= ageThreshold {
		score += 15
		factors = append(factors, fmt.Sprintf("Age >= %d years", ageThreshold))
	}

	bmi, _ := utils.CalculateBMI(profile.HeightCm, profile.WeightKg)
	if bmi >= 25 {
		score += 20
		factors = append(factors, "Overweight/Obese")
	}

	if intake.SodiumMg > dailySodiumLimitMg {
		excess := intake.SodiumMg - dailySodiumLimitMg
		score += math.Min(30, excess*0.01)
		factors = append(factors, fmt.Sprintf("High sodium intake (%.0fmg/day)", intake.SodiumMg))
	}

	// Family history adds a flat bonus here, unlike the multipliers used for
	// the other two diseases.
	if familyHistoryContains(profile.FamilyHistory, "hypertension") ||
		familyHistoryContains(profile.FamilyHistory, "high blood pressure") {
		score += 15
		factors = append(factors, "Family history of hypertension")
	}

	pct := math.Min(100, score)
	return models.DiseaseRisk{
		DiseaseName:         models.DiseaseHypertension,
		RiskPercentage:      pct,
		RiskLevel:           riskLevel(pct, 25, 50, 75),
		ContributingFactors: factors,
		Recommendations: []string{
			"Reduce sodium intake to <2,300mg/day",
			"Maintain healthy weight",
			"Regular aerobic exercise",
			"Limit alcohol consumption",
			"Manage stress levels",
		},
	}
}

func (s *DiseaseService) predictHeartDiseaseRisk(profile *models.UserProfile, intake models.DailyIntake) models.DiseaseRisk {
	score := 0.0
	var factors []string

	if (profile.Gender == models.GenderMale && profile.Age >= 45) ||
		(profile.Gender == models.GenderFemale && profile.Age >= 55) {
		score += 10
		factors = append(factors, "Advanced age")
	}

	bmi, _ := utils.CalculateBMI(profile.HeightCm, profile.WeightKg)
	if bmi >= 25 {
		score += 15
		factors = append(factors, "Overweight/Obese")
	}

	if intake.SaturatedFatG > dailySatFatLimitG {
		excess := intake.SaturatedFatG - dailySatFatLimitG
		score += math.Min(25, excess*2)
		factors = append(factors, fmt.Sprintf("High saturated fat intake (%.1fg/day)", intake.SaturatedFatG))
	}

	if intake.SodiumMg > dailySodiumLimitMg {
		score += 10
		factors = append(factors, "High sodium intake")
	}

	heartConditions := []string{"heart disease", "cardiac", "heart attack", "coronary"}
	history := strings.ToLower(strings.Join(profile.FamilyHistory, " "))
	for _, condition := range heartConditions {
		if strings.Contains(history, condition) {
			score *= heartDiseaseFamilyMultiplier
			factors = append(factors, "Family history of heart disease")
			break
		}
	}

	pct := math.Min(100, score)
	return models.DiseaseRisk{
		DiseaseName:         models.DiseaseHeartDisease,
		RiskPercentage:      pct,
		RiskLevel:           riskLevel(pct, 20, 40, 70),
		ContributingFactors: factors,
		Recommendations: []string{
			"Reduce saturated fat to <13g/day",
			"Increase omega-3 fatty acids",
			"Regular cardiovascular exercise",
			"Don't smoke",
			"Control cholesterol levels",
		},
	}
}

// riskLevel maps a percentage to a categorical level. Bands are
// upper-exclusive: a percentage equal to a threshold lands in the band above.
func riskLevel(pct, moderateAt, highAt, veryHighAt float64) string {
	switch {
	case pct < moderateAt:
		return models.RiskLevelLow
	case pct < highAt:
		return models.RiskLevelModerate
	case pct < veryHighAt:
		return models.RiskLevelHigh
	default:
		return models.RiskLevelVeryHigh
	}
}

func familyHistoryContains(history []string, condition string) bool {
	for _, entry := range history {
		if strings.ToLower(strings.TrimSpace(entry)) == condition {
			return true
		}
	}
	return false
}
