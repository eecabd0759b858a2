package services

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Kombo16/food-health-app/models"
)

// ManualInput prompts for the four nutrient values plus a category on a
// terminal. Used by the CLI; the HTTP server never wires it.
type ManualInput struct {
	in  *bufio.Reader
	out io.Writer
}

func NewManualInput(in io.Reader, out io.Writer) *ManualInput {
	return &ManualInput{in: bufio.NewReader(in), out: out}
}

func (m *ManualInput) Prompt(foodName string) (*models.NutritionFact, error) {
	fmt.Fprintf(m.out, "Please provide nutritional information for %s (per 100g):\n", foodName)

	calories, err := m.readFloat("Calories: ")
	if err != nil {
		return nil, err
	}
	sugar, err := m.readFloat("Sugar (g): ")
	if err != nil {
		return nil, err
	}
	satFat, err := m.readFloat("Saturated Fat (g): ")
	if err != nil {
		return nil, err
	}
	sodium, err := m.readFloat("Sodium (mg): ")
	if err != nil {
		return nil, err
	}

	fmt.Fprint(m.out, "Food category (fruits/vegetables/grains/proteins/dairy/snacks): ")
	category, err := m.readLine()
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = models.CategoryUnknown
	}

	return &models.NutritionFact{
		FoodName:        foodName,
		CaloriesPer100g: calories,
		SugarG:          sugar,
		SaturatedFatG:   satFat,
		SodiumMg:        sodium,
		Category:        category,
		Source:          models.SourceUser,
	}, nil
}

func (m *ManualInput) readFloat(prompt string) (float64, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.readLine()
	if err != nil {
		return 0, err
	}
	if line == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric input %q: %w", line, err)
	}
	return v, nil
}

func (m *ManualInput) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
