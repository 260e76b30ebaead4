// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"expensetracker/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("decimal", validateDecimal)
	}
}

// validateISODate accepts real calendar dates in YYYY-MM-DD form.
func validateISODate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

func validateDecimal(fl validator.FieldLevel) bool {
	_, err := models.ParseAmount(fl.Field().String())
	return err == nil
}
