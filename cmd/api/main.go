package main

import (
	"fmt"
	"net/http"
	"os"

	"costbook/internal/config"
	"costbook/internal/database"
	"costbook/internal/handlers"
	"costbook/internal/logger"
	"costbook/internal/middleware"
	"costbook/internal/services"
	"costbook/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "costbook/internal/docs" // Import swagger docs
)

// @title           Costbook API
// @version         1.0
// @description     Costbook is a construction-estimation bookkeeping backend: a priced item catalog grouped by category, projects with named estimations, and estimation lines with derived quantities and amounts.

// @host      localhost:8080
// @BasePath  /

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	categoryService := services.NewCategoryService(db)
	itemService := services.NewItemService(db)
	projectService := services.NewProjectService(db)
	estimationService := services.NewEstimationService(db)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	itemHandler := handlers.NewItemHandler(itemService)
	projectHandler := handlers.NewProjectHandler(projectService)
	estimationHandler := handlers.NewEstimationHandler(estimationService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Catalog routes
	items := router.Group("/items")
	items.POST("/categories", categoryHandler.CreateCategory)
	items.GET("/categories", categoryHandler.ListCategories)
	items.POST("", itemHandler.CreateItem)
	items.GET("", itemHandler.ListItems)

	// Project routes
	projects := router.Group("/projects")
	projects.POST("", projectHandler.CreateProject)
	projects.GET("", projectHandler.ListProjects)
	projects.DELETE("/:project_id", projectHandler.DeleteProject)
	projects.POST("/:project_id/estimations", estimationHandler.CreateEstimation)
	projects.GET("/:project_id/estimations", estimationHandler.ListEstimations)

	// Estimation routes
	estimations := router.Group("/estimations")
	estimations.DELETE("/lines", estimationHandler.DeleteLines)
	estimations.PUT("/lines/:line_id", estimationHandler.UpdateLine)
	estimations.GET("/:estimation_id", estimationHandler.GetEstimation)
	estimations.PATCH("/:estimation_id", estimationHandler.UpdateEstimation)
	estimations.DELETE("/:estimation_id", estimationHandler.DeleteEstimation)
	estimations.POST("/:estimation_id/lines", estimationHandler.AddLine)
	estimations.GET("/:estimation_id/lines", estimationHandler.ListLines)
	estimations.GET("/:estimation_id/total", estimationHandler.GetTotal)

	log.Infof("Starting Costbook backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
