package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kombo16/food-health-app/models"
	"github.com/Kombo16/food-health-app/services"
	"github.com/Kombo16/food-health-app/utils"
)

type AssessmentController struct {
	disease *services.DiseaseService
	store   *services.StoreService
}

func NewAssessmentController(disease *services.DiseaseService, store *services.StoreService) *AssessmentController {
	return &AssessmentController{disease: disease, store: store}
}

type lifestyleAssessmentInput struct {
	Age               int       `json:"age" binding:"required,min=1,max=120"`
	Gender            string    `json:"gender" binding:"required,oneof=male female other"`
	WeightKg          float64   `json:"weight_kg" binding:"required,min=20,max=500"`
	HeightCm          float64   `json:"height_cm" binding:"required,min=50,max=250"`
	ActivityLevel     string    `json:"activity_level" binding:"required,oneof=sedentary light moderate active very_active"`
	FamilyHistory     []string  `json:"family_history"`
	CurrentConditions []string  `json:"current_conditions"`
	DailyFoods        []string  `json:"daily_foods" binding:"required"`
	PortionSizesG     []float64 `json:"portion_sizes_g" binding:"required"`
	MealFrequency     int       `json:"meal_frequency" binding:"omitempty,min=1,max=10"`
	DaysTracked       int       `json:"days_tracked" binding:"omitempty,min=1,max=30"`
}

// POST /api/lifestyle-assessment
func (ac *AssessmentController) LifestyleAssessment(c *gin.Context) {
	var input lifestyleAssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foods, err := utils.CleanFoodList(input.DailyFoods)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	foods, portions, err := utils.ReconcileFoodPortions(foods, input.PortionSizesG)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.MealFrequency == 0 {
		input.MealFrequency = 3
	}
	if input.DaysTracked == 0 {
		input.DaysTracked = 1
	}

	profile := &models.UserProfile{
		Age:               input.Age,
		Gender:            input.Gender,
		WeightKg:          input.WeightKg,
		HeightCm:          input.HeightCm,
		ActivityLevel:     input.ActivityLevel,
		FamilyHistory:     input.FamilyHistory,
		CurrentConditions: input.CurrentConditions,
	}
	pattern := &models.DietaryPattern{
		DailyFoods:    foods,
		PortionSizesG: portions,
		MealFrequency: input.MealFrequency,
		DaysTracked:   input.DaysTracked,
	}

	userID := c.GetUint("userID")
	assessment := ac.disease.AssessLifestyleDiseaseRisk(userID, profile, pattern)

	intake := ac.disease.AnalyzeDietaryIntake(pattern)
	bmi, _ := utils.CalculateBMI(profile.HeightCm, profile.WeightKg)

	if email := c.GetString("email"); email != "" && os.Getenv("SES_EMAIL") != "" {
		if err := utils.SendAssessmentEmail(email, assessment); err != nil {
			logrus.WithError(err).WithField("email", email).Warn("failed to send assessment email")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":               true,
		"user_profile":          assessment.UserProfile,
		"bmi":                   bmi,
		"bmi_category":          utils.BMICategory(bmi),
		"maintenance_calories":  utils.MaintenanceCalories(profile),
		"dietary_pattern":       assessment.DietaryPattern,
		"dietary_analysis":      intake,
		"disease_risks":         assessment.DiseaseRisks,
		"overall_risk_score":    assessment.OverallRiskScore,
		"key_dietary_factors":   assessment.KeyDietaryFactors,
		"intervention_priority": assessment.InterventionPriority,
		"assessed_at":           time.Now().Format(time.RFC3339),
	})
}

// GET /api/assessments — signed-in user's assessment history.
func (ac *AssessmentController) History(c *gin.Context) {
	userID := c.GetUint("userID")
	records, err := ac.store.ListAssessments(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "assessments": records})
}
