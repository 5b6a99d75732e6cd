package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"costbook/internal/handlers"
	"costbook/internal/logger"
	"costbook/internal/middleware"
	"costbook/internal/models"
	"costbook/internal/services"
	"costbook/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	categoryService := services.NewCategoryService(db)
	itemService := services.NewItemService(db)
	projectService := services.NewProjectService(db)
	estimationService := services.NewEstimationService(db)

	// Handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	itemHandler := handlers.NewItemHandler(itemService)
	projectHandler := handlers.NewProjectHandler(projectService)
	estimationHandler := handlers.NewEstimationHandler(estimationService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	items := router.Group("/items")
	items.POST("/categories", categoryHandler.CreateCategory)
	items.GET("/categories", categoryHandler.ListCategories)
	items.POST("", itemHandler.CreateItem)
	items.GET("", itemHandler.ListItems)

	projects := router.Group("/projects")
	projects.POST("", projectHandler.CreateProject)
	projects.GET("", projectHandler.ListProjects)
	projects.DELETE("/:project_id", projectHandler.DeleteProject)
	projects.POST("/:project_id/estimations", estimationHandler.CreateEstimation)
	projects.GET("/:project_id/estimations", estimationHandler.ListEstimations)

	estimations := router.Group("/estimations")
	estimations.DELETE("/lines", estimationHandler.DeleteLines)
	estimations.PUT("/lines/:line_id", estimationHandler.UpdateLine)
	estimations.GET("/:estimation_id", estimationHandler.GetEstimation)
	estimations.PATCH("/:estimation_id", estimationHandler.UpdateEstimation)
	estimations.DELETE("/:estimation_id", estimationHandler.DeleteEstimation)
	estimations.POST("/:estimation_id/lines", estimationHandler.AddLine)
	estimations.GET("/:estimation_id/lines", estimationHandler.ListLines)
	estimations.GET("/:estimation_id/total", estimationHandler.GetTotal)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses the response body into a slice of maps.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createProject creates a project and returns its ID.
func (app *testApp) createProject(t *testing.T, name string) float64 {
	t.Helper()
	rec := app.request("POST", "/projects",
		fmt.Sprintf(`{"project_name":%q,"client_name":"Test Client"}`, name))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create project failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}

// createEstimation creates an estimation under a project and returns its ID.
func (app *testApp) createEstimation(t *testing.T, projectID float64, name string) float64 {
	t.Helper()
	rec := app.request("POST", fmt.Sprintf("/projects/%.0f/estimations", projectID),
		fmt.Sprintf(`{"estimation_name":%q}`, name))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create estimation failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}

// createItem creates a catalog item and returns its ID.
func (app *testApp) createItem(t *testing.T, code string, rate float64) float64 {
	t.Helper()
	rec := app.request("POST", "/items",
		fmt.Sprintf(`{"item_code":%q,"item_description":"Test item","unit":"cum","rate":%g}`, code, rate))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create item failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}
