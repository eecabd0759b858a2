package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kombo16/food-health-app/models"
	"github.com/Kombo16/food-health-app/services"
	"github.com/Kombo16/food-health-app/utils"
)

// Canned food sets for the demo endpoint.
var demoFoods = map[string][]string{
	"healthy":   {"apple"},
	"unhealthy": {"pizza"},
	"mixed":     {"apple", "hamburger"},
	"junk":      {"french fries", "ice cream", "coca cola"},
}

type FoodController struct {
	nutrition *services.NutritionService
	risk      *services.RiskService
	rek       *services.RecognitionService
	hub       *services.AnalysisHub
}

func NewFoodController(nutrition *services.NutritionService, risk *services.RiskService, rek *services.RecognitionService, hub *services.AnalysisHub) *FoodController {
	return &FoodController{nutrition: nutrition, risk: risk, rek: rek, hub: hub}
}

type analyzeFoodsInput struct {
	Foods []string `json:"foods" binding:"required"`
	// Optional websocket channel to stream per-food results to.
	Channel string `json:"channel"`
}

type foodAnalysis struct {
	FoodName       string                 `json:"food_name"`
	Nutrition      *models.NutritionFact  `json:"nutrition"`
	RiskAssessment *models.RiskAssessment `json:"risk_assessment"`
	Error          string                 `json:"error,omitempty"`
}

// POST /api/analyze-foods
func (fc *FoodController) AnalyzeFoods(c *gin.Context) {
	var input analyzeFoodsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foods, err := utils.CleanFoodList(input.Foods)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := make([]foodAnalysis, 0, len(foods))
	for _, food := range foods {
		result := fc.analyzeOne(food)
		results = append(results, result)
		fc.hub.Broadcast(input.Channel, services.AnalysisEvent{
			Kind:      "analysis.food",
			FoodName:  result.FoodName,
			Nutrition: result.Nutrition,
			Risk:      result.RiskAssessment,
			Error:     result.Error,
		})
	}
	fc.hub.Broadcast(input.Channel, services.AnalysisEvent{Kind: "analysis.done"})

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"results":     results,
		"analyzed_at": time.Now().Format(time.RFC3339),
	})
}

// GET /api/food/:name
func (fc *FoodController) GetFoodInfo(c *gin.Context) {
	name := c.Param("name")
	if err := utils.ValidateFoodName(name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fact := fc.nutrition.GetFoodNutrition(name)
	if fact == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Nutrition data not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "nutrition": fact})
}

// GET /api/demo/:type
func (fc *FoodController) Demo(c *gin.Context) {
	foods, ok := demoFoods[c.Param("type")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid demo type"})
		return
	}

	results := make([]foodAnalysis, 0, len(foods))
	for _, food := range foods {
		results = append(results, fc.analyzeOne(food))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"demo_type": c.Param("type"),
		"results":   results,
	})
}

type recognizeFoodInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /api/recognize-food — detect a food in a photo, then resolve and
// score the top label.
func (fc *FoodController) RecognizeFood(c *gin.Context) {
	if fc.rek == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image recognition not configured"})
		return
	}

	var input recognizeFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	labels, err := fc.rek.RecognizeFoodLabels(input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if len(labels) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no food detected in image"})
		return
	}

	result := fc.analyzeOne(labels[0])
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"labels":  labels,
		"result":  result,
	})
}

func (fc *FoodController) analyzeOne(food string) foodAnalysis {
	fact := fc.nutrition.GetFoodNutrition(food)
	if fact == nil {
		return foodAnalysis{FoodName: food, Error: "Nutrition info not found"}
	}
	return foodAnalysis{
		FoodName:       food,
		Nutrition:      fact,
		RiskAssessment: fc.risk.CalculateRiskScore(fact),
	}
}
