package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// report fields by their JSON names
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("recipe_id", validateRecipeID)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a map keyed by the
// JSON path of the offending field, e.g. "recipes[0].clock_speed".
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := fieldPath(e.Namespace())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "recipe_id":
			errs[field] = "Must be a recipe id (recipe_...)"
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "max":
			errs[field] = maxMessage(e)
		case "min":
			errs[field] = minMessage(e)
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// fieldPath drops the leading struct name from a validator namespace
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func maxMessage(e validator.FieldError) string {
	switch e.Kind() {
	case reflect.String:
		return fmt.Sprintf("Must be at most %s characters", e.Param())
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("Must have at most %s entries", e.Param())
	default:
		return fmt.Sprintf("Must be at most %s", e.Param())
	}
}

func minMessage(e validator.FieldError) string {
	switch e.Kind() {
	case reflect.String:
		return fmt.Sprintf("Must be at least %s characters", e.Param())
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("Must have at least %s entries", e.Param())
	default:
		return fmt.Sprintf("Must be at least %s", e.Param())
	}
}

// validateRecipeID accepts strings shaped like catalog recipe ids
func validateRecipeID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	return strings.HasPrefix(id, domain.RecipeIDPrefix) && len(id) > len(domain.RecipeIDPrefix)
}
