package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "costbook/internal/errors"
	"costbook/internal/models"
	"costbook/internal/pagination"
	"costbook/internal/services"
)

// --- mock item service ---

type mockItemService struct {
	createItemFn func(itemCode, itemDescription, unit string, rate *float64, categoryID *uint) (*models.Item, error)
	listItemsFn  func(categoryID *uint, window pagination.ListRequest) ([]models.Item, error)
}

func (m *mockItemService) CreateItem(itemCode, itemDescription, unit string, rate *float64, categoryID *uint) (*models.Item, error) {
	if m.createItemFn != nil {
		return m.createItemFn(itemCode, itemDescription, unit, rate, categoryID)
	}
	return &models.Item{}, nil
}

func (m *mockItemService) ListItems(categoryID *uint, window pagination.ListRequest) ([]models.Item, error) {
	if m.listItemsFn != nil {
		return m.listItemsFn(categoryID, window)
	}
	return []models.Item{}, nil
}

var _ services.ItemServicer = (*mockItemService)(nil)

func setupItemRouter(handler *ItemHandler) *gin.Engine {
	r := gin.New()
	r.POST("/items", handler.CreateItem)
	r.GET("/items", handler.ListItems)
	return r
}

func TestItemHandler_CreateItem(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		itemSvc := &mockItemService{
			createItemFn: func(code, desc, unit string, rate *float64, _ *uint) (*models.Item, error) {
				return &models.Item{
					Base:            models.Base{ID: 1},
					ItemCode:        code,
					ItemDescription: desc,
					Unit:            unit,
					Rate:            rate,
				}, nil
			},
		}
		r := setupItemRouter(NewItemHandler(itemSvc))

		rec := doRequest(r, "POST", "/items",
			`{"item_code":"ITM-001","item_description":"Brickwork in cement mortar","unit":"cum","rate":120.5}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["item_code"] != "ITM-001" {
			t.Errorf("expected item_code ITM-001, got %v", result["item_code"])
		}
		if result["rate"] != 120.5 {
			t.Errorf("expected rate 120.5, got %v", result["rate"])
		}
	})

	t.Run("returns 400 on missing code", func(t *testing.T) {
		r := setupItemRouter(NewItemHandler(&mockItemService{}))

		rec := doRequest(r, "POST", "/items", `{"item_description":"No code"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed code", func(t *testing.T) {
		r := setupItemRouter(NewItemHandler(&mockItemService{}))

		rec := doRequest(r, "POST", "/items",
			`{"item_code":"ITM 001!","item_description":"Spaces and punctuation"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on negative rate", func(t *testing.T) {
		r := setupItemRouter(NewItemHandler(&mockItemService{}))

		rec := doRequest(r, "POST", "/items",
			`{"item_code":"ITM-001","item_description":"Bad rate","rate":-5}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate code", func(t *testing.T) {
		itemSvc := &mockItemService{
			createItemFn: func(string, string, string, *float64, *uint) (*models.Item, error) {
				return nil, apperrors.ErrItemCodeExists
			},
		}
		r := setupItemRouter(NewItemHandler(itemSvc))

		rec := doRequest(r, "POST", "/items",
			`{"item_code":"ITM-001","item_description":"Duplicate"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ITEM_CODE_EXISTS")
	})

	t.Run("returns 404 on unknown category", func(t *testing.T) {
		itemSvc := &mockItemService{
			createItemFn: func(string, string, string, *float64, *uint) (*models.Item, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupItemRouter(NewItemHandler(itemSvc))

		rec := doRequest(r, "POST", "/items",
			`{"item_code":"ITM-001","item_description":"Orphan","category_id":999}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestItemHandler_ListItems(t *testing.T) {
	t.Run("returns 200 with bare array", func(t *testing.T) {
		itemSvc := &mockItemService{
			listItemsFn: func(*uint, pagination.ListRequest) ([]models.Item, error) {
				return []models.Item{
					{Base: models.Base{ID: 1}, ItemCode: "ITM-001", ItemDescription: "One"},
				}, nil
			},
		}
		r := setupItemRouter(NewItemHandler(itemSvc))

		rec := doRequest(r, "GET", "/items", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSONArray(t, rec)
		if len(result) != 1 || result[0]["item_code"] != "ITM-001" {
			t.Errorf("unexpected listing: %v", result)
		}
	})

	t.Run("passes category filter through", func(t *testing.T) {
		var captured *uint
		itemSvc := &mockItemService{
			listItemsFn: func(categoryID *uint, _ pagination.ListRequest) ([]models.Item, error) {
				captured = categoryID
				return []models.Item{}, nil
			},
		}
		r := setupItemRouter(NewItemHandler(itemSvc))

		rec := doRequest(r, "GET", "/items?category_id=7", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured == nil || *captured != 7 {
			t.Errorf("expected category filter 7, got %v", captured)
		}
	})

	t.Run("returns 400 on non-numeric category filter", func(t *testing.T) {
		r := setupItemRouter(NewItemHandler(&mockItemService{}))

		rec := doRequest(r, "GET", "/items?category_id=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
