package utils

import (
	"strings"

	"github.com/Kombo16/food-health-app/models"
)

type categoryKeywords struct {
	category string
	keywords []string
}

// Ordered priority list, not a disjoint classifier: a description matching
// several categories resolves to the earliest one.
var categoryTable = []categoryKeywords{
	{models.CategoryFruits, []string{"apple", "banana", "orange", "berry", "grape", "fruit", "citrus", "mango", "pineapple"}},
	{models.CategoryVegetables, []string{"broccoli", "spinach", "carrot", "lettuce", "tomato", "pepper", "onion"}},
	{models.CategoryGrains, []string{"bread", "rice", "pasta", "cereal", "wheat", "oat", "quinoa", "barley"}},
	{models.CategoryProteins, []string{"chicken", "beef", "fish", "egg", "meat", "pork", "turkey", "salmon", "tuna"}},
	{models.CategoryDairy, []string{"milk", "cheese", "yogurt", "cream", "butter", "cottage cheese"}},
	{models.CategorySnacks, []string{"chips", "crackers", "nuts", "seeds", "popcorn", "chocolate", "candy"}},
}

// CategorizeFood maps a free-text food description to a category by keyword
// substring match.
func CategorizeFood(description string) string {
	description = strings.ToLower(description)
	for _, entry := range categoryTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(description, keyword) {
				return entry.category
			}
		}
	}
	return models.CategoryUnknown
}
