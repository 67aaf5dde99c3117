package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var nameCharsRegex = regexp.MustCompile(`^[A-Za-z ]+$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// namechars: letters and spaces only, used for person names
	_ = v.RegisterValidation("namechars", func(fl validator.FieldLevel) bool {
		return nameCharsRegex.MatchString(fl.Field().String())
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "len":
				errors[field] = field + " must be exactly " + e.Param() + " characters"
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "numeric":
				errors[field] = field + " must contain digits only"
			case "namechars":
				errors[field] = field + " must contain letters and spaces only"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
