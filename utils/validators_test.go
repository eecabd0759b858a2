package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFoodName(t *testing.T) {
	assert.NoError(t, ValidateFoodName("brown rice"))
	assert.NoError(t, ValidateFoodName("Ben & Jerry's ice cream (pint)"))

	assert.Error(t, ValidateFoodName(""))
	assert.Error(t, ValidateFoodName("a"))
	assert.Error(t, ValidateFoodName(strings.Repeat("x", 101)))
	assert.Error(t, ValidateFoodName("rice; DROP TABLE foods"))
}

func TestCleanFoodList(t *testing.T) {
	cleaned, err := CleanFoodList([]string{" Apple ", "PIZZA"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"apple", "pizza"}, cleaned)
}

func TestCleanFoodListRejectsEmptyAndOversized(t *testing.T) {
	_, err := CleanFoodList(nil)
	assert.Error(t, err)

	big := make([]string, 21)
	for i := range big {
		big[i] = "apple"
	}
	_, err = CleanFoodList(big)
	assert.Error(t, err)
}

func TestReconcileFoodPortions(t *testing.T) {
	foods, portions, err := ReconcileFoodPortions(
		[]string{"apple", "pizza", "rice"},
		[]float64{100, 0, 150},
	)
	assert.NoError(t, err)
	assert.Equal(t, []string{"apple", "rice"}, foods)
	assert.Equal(t, []float64{100, 150}, portions)
}

func TestReconcileFoodPortionsTruncatesToShorterList(t *testing.T) {
	foods, portions, err := ReconcileFoodPortions(
		[]string{"apple", "pizza"},
		[]float64{100},
	)
	assert.NoError(t, err)
	assert.Equal(t, []string{"apple"}, foods)
	assert.Equal(t, []float64{100}, portions)
}

func TestReconcileFoodPortionsAllInvalid(t *testing.T) {
	_, _, err := ReconcileFoodPortions([]string{"apple"}, []float64{-1})
	assert.Error(t, err)
}
