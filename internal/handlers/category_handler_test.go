package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "costbook/internal/errors"
	"costbook/internal/models"
	"costbook/internal/pagination"
	"costbook/internal/services"
	"costbook/internal/validator"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn func(name string) (*models.Category, error)
	listCategoriesFn func(window pagination.ListRequest) ([]models.Category, error)
}

func (m *mockCategoryService) CreateCategory(name string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(name)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) ListCategories(window pagination.ListRequest) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(window)
	}
	return []models.Category{}, nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func fp(v float64) *float64 { return &v }

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.POST("/items/categories", handler.CreateCategory)
	r.GET("/items/categories", handler.ListCategories)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(name string) (*models.Category, error) {
				return &models.Category{Base: models.Base{ID: 1}, Name: name}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "POST", "/items/categories", `{"name":"Earthwork"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != "Earthwork" {
			t.Errorf("expected name Earthwork, got %v", result["name"])
		}
		if result["id"] != float64(1) {
			t.Errorf("expected id 1, got %v", result["id"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "POST", "/items/categories", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 409 on duplicate name", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryExists
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "POST", "/items/categories", `{"name":"Earthwork"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_EXISTS")
	})
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	t.Run("returns 200 with bare array", func(t *testing.T) {
		catSvc := &mockCategoryService{
			listCategoriesFn: func(pagination.ListRequest) ([]models.Category, error) {
				return []models.Category{
					{Base: models.Base{ID: 1}, Name: "Earthwork"},
					{Base: models.Base{ID: 2}, Name: "Concrete"},
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "GET", "/items/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSONArray(t, rec)
		if len(result) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(result))
		}
		if result[0]["name"] != "Earthwork" || result[1]["name"] != "Concrete" {
			t.Errorf("unexpected ordering: %v", result)
		}
	})

	t.Run("returns empty array when none exist", func(t *testing.T) {
		catSvc := &mockCategoryService{
			listCategoriesFn: func(pagination.ListRequest) ([]models.Category, error) {
				return nil, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "GET", "/items/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
			t.Errorf("expected empty array body, got %s", body)
		}
	})

	t.Run("passes window through", func(t *testing.T) {
		var captured pagination.ListRequest
		catSvc := &mockCategoryService{
			listCategoriesFn: func(window pagination.ListRequest) ([]models.Category, error) {
				captured = window
				return []models.Category{}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "GET", "/items/categories?skip=5&limit=10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured.Skip != 5 || captured.Limit != 10 {
			t.Errorf("expected window skip=5 limit=10, got %+v", captured)
		}
	})

	t.Run("returns 400 on negative skip", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "GET", "/items/categories?skip=-1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
