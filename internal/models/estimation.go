package models

// Estimation is a named collection of lines attached to a project.
type Estimation struct {
	Base
	ProjectID      uint   `gorm:"not null" json:"project_id"`
	EstimationName string `gorm:"not null" json:"estimation_name"`

	// Relationships
	Project *Project         `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Lines   []EstimationLine `gorm:"foreignKey:EstimationID" json:"lines,omitempty"`
}
