package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "granefapi/pkg/errors"
)

var validate = validator.New()

// timestampLayout is the accepted input format for timestamp parameters,
// e.g. "20/03/2019 08:00:00".
const timestampLayout = "02/01/2006 15:04:05"

// ValidateStruct validates a struct based on its validation tags and
// converts failures into caller-facing validation errors
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return apperrors.NewValidationError(formatValidationError(err))
	}
	return nil
}

// ConvertToDatetime parses a timestamp parameter and re-renders it in the
// ISO form the graph store indexes on
func ConvertToDatetime(paramName, value string) (string, error) {
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		return "", apperrors.NewValidationError(fmt.Sprintf(
			"parameter '%s' is expected to be in datetime '%s' format", paramName, timestampLayout))
	}
	return t.Format("2006-01-02T15:04:05"), nil
}

// formatValidationError formats validation errors into readable messages
func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, formatFieldError(e))
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "ip":
		return fmt.Sprintf("%s must be a valid IP address", field)
	case "cidr":
		return fmt.Sprintf("%s must be a valid IP address in CIDR format", field)
	case "ip|cidr":
		return fmt.Sprintf("%s must be a valid IP address or CIDR range", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
