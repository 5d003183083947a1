package routes

import (
	"project-catalog-backend/internal/api/handlers"
	"project-catalog-backend/internal/api/middleware"
	"project-catalog-backend/internal/config"
	"project-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes builds the gin engine with all middleware and endpoints
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)

	projectHandler := handlers.NewProjectHandler(service.NewProjectService(db))
	technologyHandler := handlers.NewTechnologyHandler(service.NewTechnologyService(db))
	userHandler := handlers.NewUserHandler(service.NewUserService(db))

	v1 := router.Group("/api/v1")
	{
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		technologies := v1.Group("/technologies")
		{
			technologies.GET("", technologyHandler.ListTechnologies)
			technologies.POST("", technologyHandler.CreateTechnology)
			technologies.DELETE("/:id", technologyHandler.DeleteTechnology)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	return router
}
