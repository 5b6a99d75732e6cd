package models

// Project owns zero or more estimations.
type Project struct {
	Base
	ProjectName string `gorm:"not null" json:"project_name"`
	ClientName  string `json:"client_name"`

	// Relationships
	Estimations []Estimation `gorm:"foreignKey:ProjectID" json:"estimations,omitempty"`
}
