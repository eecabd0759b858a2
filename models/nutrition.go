package models

import "gorm.io/gorm"

// Food categories used by the keyword categorizer and the alternatives table.
const (
	CategoryFruits     = "fruits"
	CategoryVegetables = "vegetables"
	CategoryGrains     = "grains"
	CategoryProteins   = "proteins"
	CategoryDairy      = "dairy"
	CategorySnacks     = "snacks"
	CategoryUnknown    = "unknown"
)

// Where a NutritionFact was resolved from.
const (
	SourceCache        = "cache"
	SourceAPI          = "api"
	SourceEncyclopedia = "encyclopedia"
	SourceUser         = "user"
)

// NutritionFact is the canonical per-100g nutrient record for a named food.
// Rows are keyed by the lower-cased food name; re-resolving the same food
// upserts the existing row.
type NutritionFact struct {
	gorm.Model      `json:"-"`
	FoodName        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"food_name"`
	CaloriesPer100g float64 `gorm:"column:calories_per_100g" json:"calories_per_100g"`
	SugarG          float64 `json:"sugar_g"`
	SaturatedFatG   float64 `json:"saturated_fat_g"`
	SodiumMg        float64 `json:"sodium_mg"`
	Category        string  `gorm:"type:varchar(100)" json:"category"`
	Source          string  `gorm:"type:varchar(50)" json:"source"`
}

// QueryLog records which sources a single lookup went through, for offline
// analysis of cache hit rates and API usage.
type QueryLog struct {
	gorm.Model
	Query               string `gorm:"type:varchar(255)"`
	FoundInCache        bool
	FoundInAPI          bool
	FoundInEncyclopedia bool
	UserProvided        bool
}
