package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"finwise-tips/internal/models"

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

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("risk_tolerance", validateRiskTolerance)
	_ = v.RegisterValidation("priority_level", validatePriorityLevel)
	_ = v.RegisterValidation("not_blank", validateNotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(i interface{}) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens validation errors into "namespace: message" detail lines.
// The root struct name is dropped, e.g. "profile.monthly_income: is required".
func FieldErrors(errs validator.ValidationErrors) []string {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, fmt.Sprintf("%s: %s", fieldPath(fe), FormatFieldError(fe)))
	}
	return details
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "risk_tolerance":
		return "must be a valid risk tolerance (low, medium, high)"
	case "priority_level":
		return "must be a valid priority level (High, Medium, Low)"
	case "not_blank":
		return "must not be blank"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// validateRiskTolerance validates that a risk tolerance is one of the allowed labels
func validateRiskTolerance(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RiskToleranceLow, models.RiskToleranceMedium, models.RiskToleranceHigh:
		return true
	default:
		return false
	}
}

// validatePriorityLevel is case-sensitive; the model is told to use exactly these labels
func validatePriorityLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return true
	default:
		return false
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
