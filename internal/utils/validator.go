// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationError is one violated field with the reason, as returned to
// API callers and logged for bad catalog records.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// GetValidationErrors flattens a validator error into the full list of
// violations. It never stops at the first failing field.
func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   fieldPath(e.Namespace()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// fieldPath strips the root struct name from a validator namespace, so
// "Product.Images[0].URL" comes back as "images[0].url".
func fieldPath(namespace string) string {
	parts := strings.SplitN(namespace, ".", 2)
	if len(parts) == 2 {
		return strings.ToLower(parts[1])
	}
	return strings.ToLower(namespace)
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		if e.Kind().String() == "slice" {
			return e.Field() + " must contain at least " + e.Param() + " items"
		}
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
