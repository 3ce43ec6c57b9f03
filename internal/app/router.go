package app

import (
	"secaware_backend/docs"
	"secaware_backend/internal/config"
	"secaware_backend/internal/middleware"
	"secaware_backend/internal/model"
	"secaware_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes (no login required)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)

		// Simulations
		simulations := authGroup.Group("/simulations")
		{
			simulations.GET("/phishing", c.simulation.GetPhishingScenarios)
			simulations.GET("/password", c.simulation.GetPasswordScenarios)
			simulations.GET("/social", c.simulation.GetSocialScenarios)
			simulations.POST("/phishing/submit", c.simulation.SubmitPhishingResponse)
			simulations.POST("/password/submit", c.simulation.SubmitPasswordResponse)
			simulations.POST("/social/submit", c.simulation.SubmitSocialResponse)
		}

		// Reports
		reports := authGroup.Group("/reports")
		{
			reports.GET("/progress", c.report.GetUserProgress)
			reports.GET("/results/:type", c.report.GetSimulationResults)
			reports.GET("/export/user", c.report.ExportUserReport)

			trainer := reports.Group("/")
			trainer.Use(middleware.RoleMiddleware(model.RoleTrainer))
			{
				trainer.GET("/organization", c.report.GetOrganizationReport)
				trainer.GET("/export/organization", c.report.ExportOrganizationReport)
			}
		}
	}

	// Scenario authoring (trainer and admin)
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleTrainer))
	{
		admin.POST("/scenarios", c.scenario.CreateScenario)
		admin.GET("/scenarios", c.scenario.ListScenarios)
		admin.GET("/scenarios/:id", c.scenario.GetScenario)
		admin.PUT("/scenarios/:id", c.scenario.UpdateScenario)
		admin.DELETE("/scenarios/:id", c.scenario.DeleteScenario)
	}
}
