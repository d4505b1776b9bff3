package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors flattens field errors into a field->message
// map for the error envelope's details. Non-validation errors (for
// example JSON syntax errors) yield an empty map.
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				out[field] = field + " is required"
			case "email":
				out[field] = field + " must be a valid email address"
			case "oneof":
				out[field] = field + " must be one of: " + e.Param()
			default:
				out[field] = field + " is invalid"
			}
		}
	}

	return out
}
