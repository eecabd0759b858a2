package models

import "gorm.io/gorm"

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Risk levels for a single disease, ordered from least to most severe.
const (
	RiskLevelLow      = "low"
	RiskLevelModerate = "moderate"
	RiskLevelHigh     = "high"
	RiskLevelVeryHigh = "very_high"
)

const (
	DiseaseDiabetes     = "Type 2 Diabetes"
	DiseaseHypertension = "Hypertension"
	DiseaseHeartDisease = "Heart Disease"
)

// UserProfile is the immutable input to a lifestyle assessment.
type UserProfile struct {
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	WeightKg          float64  `json:"weight_kg"`
	HeightCm          float64  `json:"height_cm"`
	ActivityLevel     string   `json:"activity_level"`
	FamilyHistory     []string `json:"family_history"`
	CurrentConditions []string `json:"current_conditions"`
}

// DietaryPattern holds the cumulative food entries over the tracked period.
// DailyFoods and PortionSizesG are parallel; totals are divided by DaysTracked
// to get a daily average.
type DietaryPattern struct {
	DailyFoods    []string  `json:"daily_foods"`
	PortionSizesG []float64 `json:"portion_sizes_g"`
	MealFrequency int       `json:"meal_frequency"`
	DaysTracked   int       `json:"days_tracked"`
}

// RiskAssessment is the per-food scoring result.
type RiskAssessment struct {
	FoodName     string            `json:"food_name"`
	RiskScore    int               `json:"risk_score"`
	IsRisky      bool              `json:"is_risky"`
	RiskFactors  map[string]string `json:"risk_factors"`
	Alternatives []string          `json:"alternatives"`
}

// DiseaseRisk is one disease's scoring result within an assessment.
type DiseaseRisk struct {
	DiseaseName         string   `json:"disease_name"`
	RiskPercentage      float64  `json:"risk_percentage"`
	RiskLevel           string   `json:"risk_level"`
	ContributingFactors []string `json:"contributing_factors"`
	Recommendations     []string `json:"recommendations"`
}

// DailyIntake is the daily-average nutrient vector aggregated from a
// dietary pattern.
type DailyIntake struct {
	Calories      float64 `json:"calories"`
	SugarG        float64 `json:"sugar_g"`
	SaturatedFatG float64 `json:"saturated_fat_g"`
	SodiumMg      float64 `json:"sodium_mg"`
}

// DietaryFactors holds daily intake above the recommended baselines, zero
// when intake is at or under the baseline.
type DietaryFactors struct {
	ExcessCalories     float64 `json:"excess_calories"`
	ExcessSugar        float64 `json:"excess_sugar"`
	ExcessSaturatedFat float64 `json:"excess_saturated_fat"`
	ExcessSodium       float64 `json:"excess_sodium"`
}

// LifestyleDiseaseAssessment is the full result of one assessment call.
// Read-only once built.
type LifestyleDiseaseAssessment struct {
	UserProfile          UserProfile    `json:"user_profile"`
	DietaryPattern       DietaryPattern `json:"dietary_pattern"`
	DiseaseRisks         []DiseaseRisk  `json:"disease_risks"`
	OverallRiskScore     float64        `json:"overall_risk_score"`
	KeyDietaryFactors    DietaryFactors `json:"key_dietary_factors"`
	InterventionPriority []string       `json:"intervention_priority"`
}

// ---- persistence rows ----

// RiskAssessmentRecord is the stored form of a per-food risk assessment.
// RiskFactors and Alternatives are JSON-encoded.
type RiskAssessmentRecord struct {
	gorm.Model
	FoodName     string `gorm:"type:varchar(255)"`
	RiskScore    int
	IsRisky      bool
	RiskFactors  string `gorm:"type:text"`
	Alternatives string `gorm:"type:text"`
}

// AssessmentRecord is the stored form of a lifestyle assessment. List-valued
// profile and pattern fields are JSON-encoded. UserID is zero for anonymous
// assessments.
type AssessmentRecord struct {
	gorm.Model
	UserID            uint `gorm:"index"`
	Age               int
	Gender            string `gorm:"type:varchar(10)"`
	WeightKg          float64
	HeightCm          float64
	ActivityLevel     string `gorm:"type:varchar(20)"`
	FamilyHistory     string `gorm:"type:text"`
	CurrentConditions string `gorm:"type:text"`
	DailyFoods        string `gorm:"type:text"`
	PortionSizesG     string `gorm:"type:text"`
	MealFrequency     int
	DaysTracked       int
	OverallRiskScore  float64
	Risks             []DiseaseRiskRecord `gorm:"foreignKey:AssessmentID"`
}

// DiseaseRiskRecord is one stored disease risk belonging to an assessment.
type DiseaseRiskRecord struct {
	gorm.Model
	AssessmentID        uint `gorm:"index"`
	DiseaseName         string
	RiskPercentage      float64
	RiskLevel           string `gorm:"type:varchar(20)"`
	ContributingFactors string `gorm:"type:text"`
	Recommendations     string `gorm:"type:text"`
}
