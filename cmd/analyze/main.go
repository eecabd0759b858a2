// Command analyze looks up and risk-scores foods from the terminal. Unlike
// the server, it prompts for nutrition values when every automated source
// misses.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Kombo16/food-health-app/config"
	"github.com/Kombo16/food-health-app/services"
	"github.com/Kombo16/food-health-app/utils"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s food [food ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	foods, err := utils.CleanFoodList(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	config.InitDB()

	store := services.NewStoreService(config.DB)
	nutrition := services.NewNutritionService(
		store,
		[]services.NutritionSource{services.NewUSDAService(), services.NewWikipediaService()},
		services.NewManualInput(os.Stdin, os.Stdout),
	)
	risk := services.NewRiskService(store)

	var risky, safe []string
	for _, food := range foods {
		fmt.Printf("Analyzing %s...\n", food)

		fact := nutrition.GetFoodNutrition(food)
		if fact == nil {
			fmt.Printf("Nutrition information for %s not found.\n", food)
			continue
		}

		assessment := risk.CalculateRiskScore(fact)
		fmt.Printf("  Found nutrition data (source: %s)\n", fact.Source)
		fmt.Printf("  Nutrition (per 100g): %.1f cal, %.1fg sugar, %.1fg sat fat, %.1fmg sodium\n",
			fact.CaloriesPer100g, fact.SugarG, fact.SaturatedFatG, fact.SodiumMg)
		fmt.Printf("  Risk score: %d\n", assessment.RiskScore)
		if assessment.IsRisky {
			risky = append(risky, food)
			if len(assessment.Alternatives) > 0 {
				fmt.Printf("  Healthy alternatives: %s\n", strings.Join(assessment.Alternatives, ", "))
			}
		} else {
			safe = append(safe, food)
		}
	}

	printSummary(len(foods), risky, safe)
}

func printSummary(total int, risky, safe []string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("FOOD HEALTH RISK ASSESSMENT SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total foods analyzed: %d\n", total)
	fmt.Printf("Risky foods: %d\n", len(risky))
	fmt.Printf("Safe foods: %d\n", len(safe))

	if len(risky) > 0 {
		fmt.Println("\nRISKY FOODS:")
		for _, food := range risky {
			fmt.Printf("  - %s\n", food)
		}
	}
	if len(safe) > 0 {
		fmt.Println("\nSAFE FOODS:")
		for _, food := range safe {
			fmt.Printf("  - %s\n", food)
		}
	}
}
