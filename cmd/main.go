package main

import (
	"log"
	"os"

	"github.com/Kombo16/food-health-app/config"
	"github.com/Kombo16/food-health-app/controllers"
	"github.com/Kombo16/food-health-app/routes"
	"github.com/Kombo16/food-health-app/services"
)

func main() {
	config.InitDB()

	store := services.NewStoreService(config.DB)
	nutrition := services.NewNutritionService(
		store,
		[]services.NutritionSource{services.NewUSDAService(), services.NewWikipediaService()},
		nil, // no manual input in server mode
	)
	risk := services.NewRiskService(store)
	disease := services.NewDiseaseService(nutrition, store)
	hub := services.NewAnalysisHub()

	rek, err := services.NewRecognitionService()
	if err != nil {
		log.Printf("image recognition disabled: %v", err)
		rek = nil
	}

	food := controllers.NewFoodController(nutrition, risk, rek, hub)
	assessment := controllers.NewAssessmentController(disease, store)
	realtime := controllers.NewRealtimeController(hub)

	r := routes.SetupRouter(food, assessment, realtime)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
