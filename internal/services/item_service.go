package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "costbook/internal/errors"
	"costbook/internal/models"
	"costbook/internal/pagination"
)

// itemService handles catalog item business logic.
type itemService struct {
	db *gorm.DB
}

// NewItemService creates a new ItemServicer.
func NewItemService(db *gorm.DB) ItemServicer {
	return &itemService{db: db}
}

// CreateItem creates a new catalog item. The rate, when given, becomes the
// default unit price copied onto estimation lines.
func (s *itemService) CreateItem(itemCode, itemDescription, unit string, rate *float64, categoryID *uint) (*models.Item, error) {
	if itemCode == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "item code is required")
	}
	if itemDescription == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "item description is required")
	}
	if rate != nil && *rate < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "rate must not be negative")
	}

	var count int64
	if err := s.db.Model(&models.Item{}).
		Where("item_code = ?", itemCode).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrItemCodeExists
	}

	// Resolve the category before inserting so nothing persists on failure.
	var category *models.Category
	if categoryID != nil {
		category = &models.Category{}
		if err := s.db.First(category, *categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	item := &models.Item{
		ItemCode:        itemCode,
		ItemDescription: itemDescription,
		Unit:            unit,
		Rate:            rate,
		CategoryID:      categoryID,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	item.Category = category
	return item, nil
}

// ListItems returns items in creation order, with their category preloaded.
// A category filter narrows the listing when given.
func (s *itemService) ListItems(categoryID *uint, window pagination.ListRequest) ([]models.Item, error) {
	window.Defaults()

	query := s.db.Preload("Category").Order("id asc")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var items []models.Item
	if err := query.Scopes(pagination.Window(window)).Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}
