package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/auth"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/security"
)

func SetupRoutes(r *gin.Engine, handlers *Handlers, authHandlers *auth.Handlers, authMiddleware *auth.Middleware, sec *security.Middleware) {
	// Health check (no auth required)
	r.GET("/health", handlers.HealthCheck)

	v1 := r.Group("/api/v1")
	v1.Use(sec.CORS(), sec.RateLimit())

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/login", authHandlers.Login)
		authRoutes.POST("/refresh", authHandlers.Refresh)
	}

	protected := v1.Group("/")
	protected.Use(authMiddleware.RequireAuth())
	{
		simulations := protected.Group("/simulations")
		{
			simulations.POST("/compare", handlers.CompareSimulations)
			simulations.POST("/:algorithm", handlers.RunSimulation)
			simulations.GET("", handlers.ListRuns)
			simulations.GET("/:id", handlers.GetRun)
		}

		processes := protected.Group("/processes")
		{
			processes.GET("/sample", handlers.SampleProcesses)
			processes.GET("/random", handlers.RandomProcesses)
		}
	}
}
