package services

import (
	"github.com/sirupsen/logrus"

	"github.com/Kombo16/food-health-app/models"
)

// AssessmentStore persists per-food risk assessments, best-effort.
type AssessmentStore interface {
	SaveRiskAssessment(assessment *models.RiskAssessment) error
}

// RiskThresholds are the per-100g cut-offs for each scored nutrient.
// Values above the medium cut-off score 1 point, above the high cut-off 3.
type RiskThresholds struct {
	SugarMedium  float64
	SugarHigh    float64
	SatFatMedium float64
	SatFatHigh   float64
	SodiumMedium float64
	SodiumHigh   float64
}

func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{
		SugarMedium:  5.0,
		SugarHigh:    15.0,
		SatFatMedium: 1.5,
		SatFatHigh:   5.0,
		SodiumMedium: 120.0,
		SodiumHigh:   600.0,
	}
}

// A food scoring at least this many points is flagged risky.
const riskyScoreThreshold = 5

// Healthy swaps offered per category when a food is flagged risky.
var healthyAlternatives = map[string][]string{
	models.CategoryFruits:     {"apple", "banana", "orange", "berries", "grapes", "watermelons"},
	models.CategoryVegetables: {"broccoli", "spinach", "carrots", "bell peppers", "kales"},
	models.CategoryGrains:     {"quinoa", "brown rice", "oats", "whole wheat bread"},
	models.CategoryProteins:   {"chicken breast", "salmon", "tofu", "lentils", "eggs"},
	models.CategoryDairy:      {"Greek yogurt", "cottage cheese", "almond milk"},
	models.CategorySnacks:     {"nuts", "seeds", "air-popped popcorn", "dark chocolate"},
}

// RiskService scores individual foods against nutrient thresholds.
type RiskService struct {
	store      AssessmentStore
	thresholds RiskThresholds
}

func NewRiskService(store AssessmentStore) *RiskService {
	return &RiskService{store: store, thresholds: DefaultRiskThresholds()}
}

// CalculateRiskScore accumulates points for each nutrient over its medium or
// high threshold and flags the food risky at 5+ points. The assessment is
// persisted best-effort; storage failures never fail the call.
func (s *RiskService) CalculateRiskScore(fact *models.NutritionFact) *models.RiskAssessment {
	score := 0
	factors := map[string]string{}

	switch {
	case fact.SugarG > s.thresholds.SugarHigh:
		score += 3
		factors["sugar"] = "high"
	case fact.SugarG > s.thresholds.SugarMedium:
		score++
		factors["sugar"] = "medium"
	}

	switch {
	case fact.SaturatedFatG > s.thresholds.SatFatHigh:
		score += 3
		factors["saturated_fat"] = "high"
	case fact.SaturatedFatG > s.thresholds.SatFatMedium:
		score++
		factors["saturated_fat"] = "medium"
	}

	switch {
	case fact.SodiumMg > s.thresholds.SodiumHigh:
		score += 3
		factors["sodium"] = "high"
	case fact.SodiumMg > s.thresholds.SodiumMedium:
		score++
		factors["sodium"] = "medium"
	}

	isRisky := score >= riskyScoreThreshold

	alternatives := []string{}
	if isRisky {
		alternatives = HealthyAlternatives(fact.Category)
	}

	assessment := &models.RiskAssessment{
		FoodName:     fact.FoodName,
		RiskScore:    score,
		IsRisky:      isRisky,
		RiskFactors:  factors,
		Alternatives: alternatives,
	}

	if s.store != nil {
		if err := s.store.SaveRiskAssessment(assessment); err != nil {
			logrus.WithError(err).WithField("food", fact.FoodName).Warn("failed to save risk assessment")
		}
	}

	return assessment
}

// HealthyAlternatives returns the swap list for a category, empty for
// unrecognized categories.
func HealthyAlternatives(category string) []string {
	alts, ok := healthyAlternatives[category]
	if !ok {
		return []string{}
	}
	out := make([]string, len(alts))
	copy(out, alts)
	return out
}
