// Package pagination provides offset/limit windowing for list endpoints.
// List responses stay plain arrays; callers page with skip/limit query
// parameters.
package pagination

import "gorm.io/gorm"

const defaultLimit = 100

// ListRequest holds windowing parameters parsed from query strings.
type ListRequest struct {
	Skip  int `form:"skip" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// Defaults fills in the default window when limit is not provided.
func (r *ListRequest) Defaults() {
	if r.Limit == 0 {
		r.Limit = defaultLimit
	}
}

// Window returns a GORM scope that applies OFFSET and LIMIT for the request.
func Window(req ListRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Skip).Limit(req.Limit)
	}
}
