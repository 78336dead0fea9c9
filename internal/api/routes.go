package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ironplan/workout-planner/internal/service"
)

// SetupRoutes mounts the API under /api/v1. When authService is nil the API
// runs open, which is the default for a private local deployment; otherwise
// the workout-day and catalog routes require a bearer token from
// /auth/login.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	dayService service.DayService,
) {
	dayHandler := NewDayHandler(dayService)
	catalogHandler := NewCatalogHandler()

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	if authService != nil {
		authHandler := NewAuthHandler(authService)
		apiV1.POST("/auth/login", authHandler.Login)
	}

	protected := apiV1.Group("")
	if authService != nil {
		protected.Use(AuthMiddleware(jwtSecret))
	}
	{
		protected.GET("/exercises", catalogHandler.ListExercises)

		dayGroup := protected.Group("/workout-days")
		{
			dayGroup.GET("", dayHandler.ListDays)
			dayGroup.POST("", dayHandler.CreateDay)
			dayGroup.GET("/:dayId", dayHandler.GetDay)
			dayGroup.PUT("/:dayId", dayHandler.UpdateDay)
			dayGroup.DELETE("/:dayId", dayHandler.DeleteDay)
		}
	}
}
