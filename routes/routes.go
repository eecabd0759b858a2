package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kombo16/food-health-app/controllers"
	"github.com/Kombo16/food-health-app/middlewares"
)

func SetupRouter(food *controllers.FoodController, assessment *controllers.AssessmentController, realtime *controllers.RealtimeController) *gin.Engine {
	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"message":   "Food Health API is running",
		})
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Analysis routes, open to anonymous callers; a valid token attaches
	// results to the user's history.
	api := r.Group("/api")
	api.Use(middlewares.OptionalAuth())
	{
		api.POST("/analyze-foods", food.AnalyzeFoods)
		api.GET("/food/:name", food.GetFoodInfo)
		api.GET("/demo/:type", food.Demo)
		api.POST("/recognize-food", food.RecognizeFood)
		api.POST("/lifestyle-assessment", assessment.LifestyleAssessment)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/assessments", assessment.History)
	}

	r.GET("/ws/analysis/:channel", realtime.AnalysisWS)

	return r
}
