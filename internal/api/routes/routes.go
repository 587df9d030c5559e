package routes

import (
	"conservation-portal-backend/internal/api/handlers"
	"conservation-portal-backend/internal/api/middleware"
	"conservation-portal-backend/internal/auth"
	"conservation-portal-backend/internal/config"
	"conservation-portal-backend/internal/logger"
	"conservation-portal-backend/internal/repository"
	"conservation-portal-backend/internal/service"
	"conservation-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	fileRepo := repository.NewFileRepository(db)
	layerRepo := repository.NewProjectLayerRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)
	solutionLayerRepo := repository.NewSolutionLayerRepository(db)

	// Initialize storage and the deletion coordinator
	store := storage.NewOSStore(cfg.StorageRoot)
	coordinator := service.NewDeletionCoordinator(db, projectRepo, store, logger.New())

	// Initialize services
	userService := service.NewUserService(userRepo, validate)
	projectService := service.NewProjectService(projectRepo, userRepo, fileRepo, coordinator, validate)
	fileService := service.NewFileService(fileRepo, projectRepo, userRepo, validate)
	layerService := service.NewLayerService(layerRepo, projectRepo, fileRepo, validate)
	solutionService := service.NewSolutionService(db, solutionRepo, layerRepo, solutionLayerRepo, projectRepo, userRepo, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	fileHandler := handlers.NewFileHandler(fileService)
	layerHandler := handlers.NewLayerHandler(layerService)
	solutionHandler := handlers.NewSolutionHandler(solutionService)

	// Initialize auth middleware
	authService := auth.NewService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		// Reads are open; mutations require an authenticated actor
		v1.GET("/users", userHandler.ListUsers)
		v1.GET("/users/:id", userHandler.GetUser)
		v1.GET("/projects", projectHandler.ListProjects)
		v1.GET("/projects/:id", projectHandler.GetProject)
		v1.GET("/projects/:id/layers", layerHandler.ListProjectLayers)
		v1.GET("/projects/:id/solutions", solutionHandler.ListProjectSolutions)
		v1.GET("/files/:id", fileHandler.GetFile)
		v1.GET("/layers/:id", layerHandler.GetLayer)
		v1.GET("/solutions/:id", solutionHandler.GetSolution)
		v1.GET("/solutions/:id/layers", solutionHandler.ListSolutionLayers)

		authed := v1.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			authed.POST("/users", userHandler.CreateUser)
			authed.POST("/projects", projectHandler.CreateProject)
			authed.PUT("/projects/:id/planning-unit", projectHandler.UpdatePlanningUnit)
			authed.DELETE("/projects/:id", projectHandler.DeleteProject)
			authed.POST("/files", fileHandler.CreateFile)
			authed.POST("/layers", layerHandler.CreateLayer)
			authed.POST("/solutions", solutionHandler.CreateSolution)
			authed.POST("/solutions/:id/layers", solutionHandler.CreateSolutionLayer)
			authed.PUT("/solutions/:id/memberships/:set", solutionHandler.ReplaceMembership)
		}
	}

	return router
}
