package api

import (
	"net/http"

	"alcyxob/fitness-program/internal/logger"
	"alcyxob/fitness-program/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries everything SetupRoutes wires.
type RouterConfig struct {
	ProfileService  service.ProfileService
	ProgramService  service.ProgramService
	ExerciseService service.ExerciseService
	AllowedOrigins  []string
	Logger          *logger.Logger
}

func SetupRoutes(router *gin.Engine, cfg RouterConfig) {
	profileHandler := NewProfileHandler(cfg.ProfileService)
	programHandler := NewProgramHandler(cfg.ProgramService)
	exerciseHandler := NewExerciseHandler(cfg.ExerciseService)

	router.Use(RequestLogger(cfg.Logger), CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		// --- Onboarding ---
		users := apiV1.Group("/users")
		{
			users.POST("", profileHandler.CreateUser)
			users.POST("/:id/fitness-profile", profileHandler.SaveFitnessProfile)
			users.POST("/:id/equipment", profileHandler.SaveEquipment)
			users.POST("/:id/injuries", profileHandler.SaveInjuries)
			users.GET("/:id/profile", profileHandler.GetProfile)
			users.GET("/:id/events", profileHandler.ListFunnelEvents)

			// --- Programs ---
			users.POST("/:id/generate-program", programHandler.GenerateProgram)
			users.GET("/:id/program", programHandler.GetLatestProgram)
			users.GET("/:id/email-preview/:day", programHandler.PreviewEmail)
		}

		apiV1.GET("/programs/:programId/deliveries", programHandler.ListDeliveries)

		// --- Exercise catalog ---
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.ListExercises)
		}
	}
}
