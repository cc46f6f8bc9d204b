package validation

import (
	"fmt"
	"reflect"
	"strings"

	"budget-reconciler/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("day_of_month", validateDayOfMonth)
	_ = v.RegisterValidation("carry_forward_mode", validateCarryForwardMode)
	_ = v.RegisterValidation("category_mode", validateCategoryMode)
	_ = v.RegisterValidation("data_source", validateDataSource)
	_ = v.RegisterValidation("iso_date", validateISODate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct and flattens validation errors into readable messages
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s: %s", fieldErr.Namespace(), FormatFieldError(fieldErr)))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}

// FormatFieldError renders a single field error for logs and API responses
func FormatFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "url":
		return "must be a valid URL"
	case "unique":
		return fmt.Sprintf("must not repeat %s", fieldErr.Param())
	case "day_of_month":
		return "must be a day of month between 1 and 28"
	case "carry_forward_mode":
		return "must be lenient or strict"
	case "category_mode":
		return "must be keyword or external"
	case "data_source":
		return "must be organizze or sample"
	case "iso_date":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed on %s", fieldErr.Tag())
	}
}

// Custom validation functions

// validateDayOfMonth accepts days present in every month
func validateDayOfMonth(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 28
}

func validateCarryForwardMode(fl validator.FieldLevel) bool {
	switch models.CarryForwardMode(fl.Field().String()) {
	case models.CarryForwardLenient, models.CarryForwardStrict:
		return true
	default:
		return false
	}
}

func validateCategoryMode(fl validator.FieldLevel) bool {
	mode := strings.ToLower(fl.Field().String())
	return mode == models.CategoryModeKeyword || mode == models.CategoryModeExternal
}

func validateDataSource(fl validator.FieldLevel) bool {
	source := strings.ToLower(fl.Field().String())
	return source == models.DataSourceOrganizze || source == models.DataSourceSample
}

// validateISODate accepts empty values so it can be combined with omitempty-like optional fields
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := models.ParseDate(value)
	return err == nil
}
