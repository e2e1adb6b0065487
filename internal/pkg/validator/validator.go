package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations()
}

func registerCustomValidations() {
	// Gender validation
	validate.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		gender := fl.Field().String()
		validGenders := []string{"male", "female", "other", ""}
		for _, g := range validGenders {
			if gender == g {
				return true
			}
		}
		return false
	})

	// Currency code: three uppercase letters (EUR, USD, ...)
	validate.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if len(code) != 3 {
			return false
		}
		for _, c := range code {
			if c < 'A' || c > 'Z' {
				return false
			}
		}
		return true
	})

	// Card number: digits only. Length is checked separately so the two
	// violations keep their own messages.
	validate.RegisterValidation("digits_only", func(fl validator.FieldLevel) bool {
		number := fl.Field().String()
		for _, c := range number {
			if c < '0' || c > '9' {
				return false
			}
		}
		return true
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "len":
			errors[field] = "Value must be exactly " + err.Param() + " characters long"
		case "uuid":
			errors[field] = "Invalid UUID format"
		case "url":
			errors[field] = "Invalid URL format"
		case "gender":
			errors[field] = "Invalid gender. Must be: male, female, or other"
		case "currency_code":
			errors[field] = "Invalid currency code. Must be a three-letter code like EUR"
		case "digits_only":
			errors[field] = "Value must contain only digits"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
