package models

// Item is a catalog entry carrying the default unit price for lines.
// Items are immutable once created; lines copy the rate at write time.
type Item struct {
	Base
	ItemCode        string   `gorm:"uniqueIndex;not null" json:"item_code"`
	ItemDescription string   `gorm:"not null" json:"item_description"`
	Unit            string   `json:"unit"`
	Rate            *float64 `json:"rate"`
	CategoryID      *uint    `json:"category_id,omitempty"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// DefaultRate returns the item's rate, treating a missing rate as 0.
func (i *Item) DefaultRate() float64 {
	if i.Rate == nil {
		return 0
	}
	return *i.Rate
}
