package utils

import (
	"mentorportal-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("weekday", validateWeekday)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateWeekday(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, day := range constvars.DaysOfWeek {
		if value == day {
			return true
		}
	}
	return false
}
