package models

import "time"

// Base contains common columns for all tables
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All returns every model in the schema, in dependency order.
// Used for auto-migration against SQLite.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Item{},
		&Project{},
		&Estimation{},
		&EstimationLine{},
	}
}
