package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "costbook/internal/errors"
	"costbook/internal/models"
	"costbook/internal/pagination"
)

// projectService handles project-related business logic.
type projectService struct {
	db *gorm.DB
}

// NewProjectService creates a new ProjectServicer.
func NewProjectService(db *gorm.DB) ProjectServicer {
	return &projectService{db: db}
}

// CreateProject creates a new project.
func (s *projectService) CreateProject(projectName, clientName string) (*models.Project, error) {
	if projectName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "project name is required")
	}

	project := &models.Project{
		ProjectName: projectName,
		ClientName:  clientName,
	}
	if err := s.db.Create(project).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return project, nil
}

// ListProjects returns projects in creation order.
func (s *projectService) ListProjects(window pagination.ListRequest) ([]models.Project, error) {
	window.Defaults()

	var projects []models.Project
	if err := s.db.Order("id asc").
		Scopes(pagination.Window(window)).
		Find(&projects).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return projects, nil
}

// DeleteProject removes a project. Deletion is rejected while the project
// still owns estimations.
func (s *projectService) DeleteProject(projectID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var count int64
	if err := s.db.Model(&models.Estimation{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrProjectHasEstimations
	}

	if err := s.db.Delete(&project).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &project, nil
}
