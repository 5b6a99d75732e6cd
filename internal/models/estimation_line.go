package models

// EstimationLine is a single priced row of an estimation. The four
// dimensional inputs and the quantity are stored exactly as submitted
// (possibly null); the effective values live in CalculatedQty, Rate and
// Amount so that totals never depend on later item changes.
type EstimationLine struct {
	Base
	EstimationID uint `gorm:"not null;index" json:"estimation_id"`
	ItemID       uint `gorm:"not null" json:"item_id"`

	SubDescription string   `json:"sub_description"`
	NoOfUnits      *float64 `json:"no_of_units"`
	Length         *float64 `json:"length"`
	Width          *float64 `json:"width"`
	Thickness      *float64 `json:"thickness"`
	Quantity       *float64 `json:"quantity"`

	CalculatedQty float64 `gorm:"not null" json:"calculated_qty"`
	Rate          float64 `gorm:"not null" json:"rate"`
	Amount        float64 `gorm:"not null" json:"amount"`

	// Relationships
	Estimation *Estimation `gorm:"foreignKey:EstimationID" json:"estimation,omitempty"`
	Item       *Item       `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}
