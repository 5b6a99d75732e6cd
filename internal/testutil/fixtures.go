package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"costbook/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: fmt.Sprintf("Test Category %d", nextID()),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestItem creates a catalog item with a unique code and the given rate.
func CreateTestItem(t *testing.T, db *gorm.DB, rate float64) *models.Item {
	t.Helper()

	n := nextID()
	item := &models.Item{
		ItemCode:        fmt.Sprintf("TST-%03d", n),
		ItemDescription: fmt.Sprintf("Test item %d", n),
		Unit:            "cum",
		Rate:            &rate,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}

// CreateTestItemWithoutRate creates a catalog item carrying no default rate.
func CreateTestItemWithoutRate(t *testing.T, db *gorm.DB) *models.Item {
	t.Helper()

	n := nextID()
	item := &models.Item{
		ItemCode:        fmt.Sprintf("TST-%03d", n),
		ItemDescription: fmt.Sprintf("Test item %d", n),
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}

// CreateTestProject creates a project with a unique name.
func CreateTestProject(t *testing.T, db *gorm.DB) *models.Project {
	t.Helper()

	project := &models.Project{
		ProjectName: fmt.Sprintf("Test Project %d", nextID()),
		ClientName:  "Test Client",
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateTestEstimation creates an estimation under the given project.
func CreateTestEstimation(t *testing.T, db *gorm.DB, projectID uint) *models.Estimation {
	t.Helper()

	estimation := &models.Estimation{
		ProjectID:      projectID,
		EstimationName: fmt.Sprintf("Test Estimation %d", nextID()),
	}
	if err := db.Create(estimation).Error; err != nil {
		t.Fatalf("failed to create test estimation: %v", err)
	}
	return estimation
}
