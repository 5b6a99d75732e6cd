package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "costbook/internal/errors"
	"costbook/internal/models"
	"costbook/internal/services"
)

// ItemHandler handles catalog item requests
type ItemHandler struct {
	itemService services.ItemServicer
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService services.ItemServicer) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItemRequest represents the request payload for creating an item
type CreateItemRequest struct {
	ItemCode        string   `json:"item_code" binding:"required,item_code"`
	ItemDescription string   `json:"item_description" binding:"required"`
	Unit            string   `json:"unit"`
	Rate            *float64 `json:"rate" binding:"omitempty,gte=0"`
	CategoryID      *uint    `json:"category_id"`
}

// CreateItem handles the creation of a new catalog item
// @Summary     Create an item
// @Description Create a new catalog item with its default rate
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       request body CreateItemRequest true "Item details"
// @Success     201 {object} models.Item "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Item code already taken"
// @Router      /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.itemService.CreateItem(req.ItemCode, req.ItemDescription, req.Unit, req.Rate, req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ListItems handles the retrieval of catalog items
// @Summary     List items
// @Description List catalog items in creation order, optionally filtered by category
// @Tags        items
// @Produce     json
// @Param       category_id query int false "Filter by category"
// @Param       skip        query int false "Rows to skip"
// @Param       limit       query int false "Maximum rows to return"
// @Success     200 {array} models.Item "List of items"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	window, err := bindWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid category_id"))
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	items, err := h.itemService.ListItems(categoryID, window)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	c.JSON(http.StatusOK, items)
}
