package models

// Category groups catalog items, e.g. "Earthwork" or "Concrete".
type Category struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// Relationships
	Items []Item `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}
