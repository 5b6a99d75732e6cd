package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "costbook/internal/errors"
	"costbook/internal/models"
	"costbook/internal/services"
)

// CategoryHandler handles item category requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory handles the creation of a new item category
// @Summary     Create a category
// @Description Create a new item category with a unique name
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Name already taken"
// @Router      /items/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListCategories handles the retrieval of all categories
// @Summary     List categories
// @Description List item categories in creation order
// @Tags        items
// @Produce     json
// @Param       skip  query int false "Rows to skip"
// @Param       limit query int false "Maximum rows to return"
// @Success     200 {array} models.Category "List of categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	window, err := bindWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories(window)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, categories)
}
