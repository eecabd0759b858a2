package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const maxFoodsPerRequest = 20

var foodNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-\(\)\.,'&]+$`)

// ValidateFoodName checks length and charset of a single food name.
func ValidateFoodName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("food name cannot be empty")
	}
	if len(name) < 2 || len(name) > 100 {
		return errors.New("food name must be between 2 and 100 characters")
	}
	if !foodNamePattern.MatchString(name) {
		return errors.New("food name contains invalid characters")
	}
	return nil
}

// CleanFoodList validates each entry and returns the trimmed, lower-cased
// list. Rejects empty lists and lists with more than 20 entries.
func CleanFoodList(foods []string) ([]string, error) {
	if len(foods) == 0 {
		return nil, errors.New("at least one food item must be provided")
	}
	if len(foods) > maxFoodsPerRequest {
		return nil, fmt.Errorf("cannot analyze more than %d foods at once", maxFoodsPerRequest)
	}

	cleaned := make([]string, 0, len(foods))
	for _, food := range foods {
		if err := ValidateFoodName(food); err != nil {
			return nil, fmt.Errorf("invalid food %q: %w", food, err)
		}
		cleaned = append(cleaned, strings.ToLower(strings.TrimSpace(food)))
	}
	return cleaned, nil
}

// ReconcileFoodPortions pairs foods with portion sizes, truncating to the
// shorter list and dropping entries with non-positive portions.
func ReconcileFoodPortions(foods []string, portions []float64) ([]string, []float64, error) {
	n := len(foods)
	if len(portions) < n {
		n = len(portions)
	}
	if n == 0 {
		return nil, nil, errors.New("no valid food and portion size pairs found")
	}

	outFoods := make([]string, 0, n)
	outPortions := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if portions[i] <= 0 || strings.TrimSpace(foods[i]) == "" {
			continue
		}
		outFoods = append(outFoods, foods[i])
		outPortions = append(outPortions, portions[i])
	}
	if len(outFoods) == 0 {
		return nil, nil, errors.New("no valid food and portion size pairs found")
	}
	return outFoods, outPortions, nil
}
