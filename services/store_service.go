package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Kombo16/food-health-app/models"
)

// StoreService is the gorm-backed implementation of FoodStore,
// AssessmentStore, and LifestyleStore.
type StoreService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// GetFood returns the cached fact for a food name, nil when absent. Names
// are matched case-insensitively.
func (s *StoreService) GetFood(name string) (*models.NutritionFact, error) {
	var fact models.NutritionFact
	err := s.db.Where("food_name = ?", normalizeFoodName(name)).First(&fact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("food cache read for %q: %w", name, err)
	}
	return &fact, nil
}

// PutFood upserts a fact keyed by its lower-cased name. Concurrent writers
// for the same food simply overwrite each other.
func (s *StoreService) PutFood(fact *models.NutritionFact) error {
	row := *fact
	row.ID = 0
	row.FoodName = normalizeFoodName(fact.FoodName)
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "food_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories_per_100g", "sugar_g", "saturated_fat_g", "sodium_mg", "category", "source"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("food cache write for %q: %w", fact.FoodName, err)
	}
	return nil
}

func (s *StoreService) LogQuery(name string, tried SourcesTried) error {
	entry := models.QueryLog{
		Query:               normalizeFoodName(name),
		FoundInCache:        tried.Cache,
		FoundInAPI:          tried.API,
		FoundInEncyclopedia: tried.Encyclopedia,
		UserProvided:        tried.User,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("query log write for %q: %w", name, err)
	}
	return nil
}

func (s *StoreService) SaveRiskAssessment(assessment *models.RiskAssessment) error {
	factors, _ := json.Marshal(assessment.RiskFactors)
	alternatives, _ := json.Marshal(assessment.Alternatives)

	record := models.RiskAssessmentRecord{
		FoodName:     assessment.FoodName,
		RiskScore:    assessment.RiskScore,
		IsRisky:      assessment.IsRisky,
		RiskFactors:  string(factors),
		Alternatives: string(alternatives),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("risk assessment write for %q: %w", assessment.FoodName, err)
	}
	return nil
}

// SaveAssessment stores the profile, pattern, and per-disease risks of one
// assessment as a single record with child risk rows.
func (s *StoreService) SaveAssessment(userID uint, profile *models.UserProfile, pattern *models.DietaryPattern, risks []models.DiseaseRisk, overallScore float64) error {
	familyHistory, _ := json.Marshal(profile.FamilyHistory)
	conditions, _ := json.Marshal(profile.CurrentConditions)
	foods, _ := json.Marshal(pattern.DailyFoods)
	portions, _ := json.Marshal(pattern.PortionSizesG)

	record := models.AssessmentRecord{
		UserID:            userID,
		Age:               profile.Age,
		Gender:            profile.Gender,
		WeightKg:          profile.WeightKg,
		HeightCm:          profile.HeightCm,
		ActivityLevel:     profile.ActivityLevel,
		FamilyHistory:     string(familyHistory),
		CurrentConditions: string(conditions),
		DailyFoods:        string(foods),
		PortionSizesG:     string(portions),
		MealFrequency:     pattern.MealFrequency,
		DaysTracked:       pattern.DaysTracked,
		OverallRiskScore:  overallScore,
	}
	for _, risk := range risks {
		factors, _ := json.Marshal(risk.ContributingFactors)
		recommendations, _ := json.Marshal(risk.Recommendations)
		record.Risks = append(record.Risks, models.DiseaseRiskRecord{
			DiseaseName:         risk.DiseaseName,
			RiskPercentage:      risk.RiskPercentage,
			RiskLevel:           risk.RiskLevel,
			ContributingFactors: string(factors),
			Recommendations:     string(recommendations),
		})
	}

	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("assessment write: %w", err)
	}
	return nil
}

// ListAssessments returns a user's stored assessments, newest first, with
// their disease risk rows.
func (s *StoreService) ListAssessments(userID uint) ([]models.AssessmentRecord, error) {
	var records []models.AssessmentRecord
	err := s.db.Preload("Risks").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("assessment list for user %d: %w", userID, err)
	}
	return records, nil
}

func normalizeFoodName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
