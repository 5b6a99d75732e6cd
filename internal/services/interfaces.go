package services

import (
	"costbook/internal/models"
	"costbook/internal/pagination"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string) (*models.Category, error)
	ListCategories(window pagination.ListRequest) ([]models.Category, error)
}

// ItemServicer defines the contract for catalog item business logic.
type ItemServicer interface {
	CreateItem(itemCode, itemDescription, unit string, rate *float64, categoryID *uint) (*models.Item, error)
	ListItems(categoryID *uint, window pagination.ListRequest) ([]models.Item, error)
}

// ProjectServicer defines the contract for project-related business logic.
type ProjectServicer interface {
	CreateProject(projectName, clientName string) (*models.Project, error)
	ListProjects(window pagination.ListRequest) ([]models.Project, error)
	DeleteProject(projectID uint) (*models.Project, error)
}

// LineInput carries the raw line fields submitted by the caller. Pointer
// fields distinguish "absent" from zero, which matters for the quantity
// derivation.
type LineInput struct {
	ItemID         uint
	SubDescription string
	NoOfUnits      *float64
	Length         *float64
	Width          *float64
	Thickness      *float64
	Quantity       *float64
	Rate           *float64
}

// EstimationServicer defines the contract for estimations, their lines,
// and the grand total.
type EstimationServicer interface {
	CreateEstimation(projectID uint, estimationName string) (*models.Estimation, error)
	ListEstimations(projectID uint, window pagination.ListRequest) ([]models.Estimation, error)
	GetEstimation(estimationID uint) (*models.Estimation, error)
	RenameEstimation(estimationID uint, estimationName string) (*models.Estimation, error)
	DeleteEstimation(estimationID uint) (*models.Estimation, error)

	AddLine(estimationID uint, input LineInput) (*models.EstimationLine, error)
	UpdateLine(lineID uint, input LineInput) (*models.EstimationLine, error)
	DeleteLines(lineIDs []uint) (int64, error)
	ListLines(estimationID uint, window pagination.ListRequest) ([]models.EstimationLine, error)
	GrandTotal(estimationID uint) (float64, error)
}
