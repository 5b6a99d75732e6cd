package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "costbook/internal/errors"
	"costbook/internal/models"
	"costbook/internal/pagination"
)

// estimationService handles estimations, their lines, and totals.
type estimationService struct {
	db *gorm.DB
}

// NewEstimationService creates a new EstimationServicer.
func NewEstimationService(db *gorm.DB) EstimationServicer {
	return &estimationService{db: db}
}

// CreateEstimation attaches a new named estimation to a project.
func (s *estimationService) CreateEstimation(projectID uint, estimationName string) (*models.Estimation, error) {
	if estimationName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "estimation name is required")
	}

	if err := s.db.First(&models.Project{}, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	estimation := &models.Estimation{
		ProjectID:      projectID,
		EstimationName: estimationName,
	}
	if err := s.db.Create(estimation).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return estimation, nil
}

// ListEstimations returns a project's estimations in creation order.
func (s *estimationService) ListEstimations(projectID uint, window pagination.ListRequest) ([]models.Estimation, error) {
	window.Defaults()

	if err := s.db.First(&models.Project{}, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var estimations []models.Estimation
	if err := s.db.Where("project_id = ?", projectID).
		Order("id asc").
		Scopes(pagination.Window(window)).
		Find(&estimations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return estimations, nil
}

// GetEstimation retrieves an estimation with its lines.
func (s *estimationService) GetEstimation(estimationID uint) (*models.Estimation, error) {
	var estimation models.Estimation
	err := s.db.Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("estimation_lines.id asc")
	}).First(&estimation, estimationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEstimationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &estimation, nil
}

// RenameEstimation updates an estimation's name.
func (s *estimationService) RenameEstimation(estimationID uint, estimationName string) (*models.Estimation, error) {
	if estimationName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "estimation name is required")
	}

	var estimation models.Estimation
	if err := s.db.First(&estimation, estimationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEstimationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&estimation).Update("estimation_name", estimationName).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &estimation, nil
}

// DeleteEstimation removes an estimation together with its lines.
func (s *estimationService) DeleteEstimation(estimationID uint) (*models.Estimation, error) {
	var estimation models.Estimation
	if err := s.db.First(&estimation, estimationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEstimationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("estimation_id = ?", estimationID).
			Delete(&models.EstimationLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&estimation).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &estimation, nil
}

// AddLine appends a line to an estimation. The effective quantity, rate and
// amount are computed once here and stored with the raw inputs; the rate is
// never re-synced from the item afterwards.
func (s *estimationService) AddLine(estimationID uint, input LineInput) (*models.EstimationLine, error) {
	if err := validateLineInput(input); err != nil {
		return nil, err
	}

	if err := s.db.First(&models.Estimation{}, estimationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEstimationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var item models.Item
	if err := s.db.First(&item, input.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	line := buildLine(estimationID, input, &item)
	if err := s.db.Create(line).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	line.Item = &item
	return line, nil
}

// UpdateLine replaces a line's inputs and recomputes its derived values.
func (s *estimationService) UpdateLine(lineID uint, input LineInput) (*models.EstimationLine, error) {
	if err := validateLineInput(input); err != nil {
		return nil, err
	}

	var existing models.EstimationLine
	if err := s.db.First(&existing, lineID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLineNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var item models.Item
	if err := s.db.First(&item, input.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	line := buildLine(existing.EstimationID, input, &item)
	line.Base = existing.Base
	if err := s.db.Save(line).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	line.Item = &item
	return line, nil
}

// DeleteLines removes the given lines and reports how many rows went away.
// IDs that do not resolve are skipped rather than treated as errors.
func (s *estimationService) DeleteLines(lineIDs []uint) (int64, error) {
	if len(lineIDs) == 0 {
		return 0, nil
	}

	result := s.db.Where("id IN ?", lineIDs).Delete(&models.EstimationLine{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected, nil
}

// ListLines returns an estimation's lines in creation order, with the
// referenced item preloaded.
func (s *estimationService) ListLines(estimationID uint, window pagination.ListRequest) ([]models.EstimationLine, error) {
	window.Defaults()

	if err := s.db.First(&models.Estimation{}, estimationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEstimationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var lines []models.EstimationLine
	if err := s.db.Preload("Item").
		Where("estimation_id = ?", estimationID).
		Order("id asc").
		Scopes(pagination.Window(window)).
		Find(&lines).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return lines, nil
}

// GrandTotal sums the stored amounts over an estimation's lines.
func (s *estimationService) GrandTotal(estimationID uint) (float64, error) {
	if err := s.db.First(&models.Estimation{}, estimationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrEstimationNotFound
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var total float64
	if err := s.db.Model(&models.EstimationLine{}).
		Where("estimation_id = ?", estimationID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// validateLineInput rejects negative numeric inputs before anything persists.
func validateLineInput(input LineInput) error {
	checks := map[string]*float64{
		"no_of_units": input.NoOfUnits,
		"length":      input.Length,
		"width":       input.Width,
		"thickness":   input.Thickness,
		"quantity":    input.Quantity,
		"rate":        input.Rate,
	}
	for field, value := range checks {
		if value != nil && *value < 0 {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must not be negative")
		}
	}
	return nil
}

// buildLine assembles a line from raw inputs, deriving quantity, rate and
// amount per the computation rule.
func buildLine(estimationID uint, input LineInput, item *models.Item) *models.EstimationLine {
	rate := item.DefaultRate()
	if input.Rate != nil {
		rate = *input.Rate
	}

	qty := effectiveQuantity(input.NoOfUnits, input.Length, input.Width, input.Thickness, input.Quantity)

	return &models.EstimationLine{
		EstimationID:   estimationID,
		ItemID:         input.ItemID,
		SubDescription: input.SubDescription,
		NoOfUnits:      input.NoOfUnits,
		Length:         input.Length,
		Width:          input.Width,
		Thickness:      input.Thickness,
		Quantity:       input.Quantity,
		CalculatedQty:  qty,
		Rate:           rate,
		Amount:         roundAmount(qty * rate),
	}
}
