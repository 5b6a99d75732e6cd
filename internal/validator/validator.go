// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Item codes from rate schedules look like "02-10-10" or "ITM-001":
// alphanumeric segments joined by separators, no whitespace.
var itemCodeRegex = regexp.MustCompile(`^[A-Za-z0-9]+([./_-][A-Za-z0-9]+)*$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("item_code", validateItemCode)
	}
}

func validateItemCode(fl validator.FieldLevel) bool {
	return itemCodeRegex.MatchString(fl.Field().String())
}
