package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every request type in this package
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so clients can map errors back to their fields
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Nullable patch fields validate as their string value; null reads as ""
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		return v.Interface().(NullableString).String()
	}, NullableString{})

	rules := map[string]validator.Func{
		"orderlines": validateOrderLines,
		"optemail": func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || validate.Var(s, "email") == nil
		},
		"orderstatus": func(fl validator.FieldLevel) bool {
			return OrderStatus(fl.Field().String()).Valid()
		},
		"reservationstatus": func(fl validator.FieldLevel) bool {
			return ReservationStatus(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range rules {
		mustRegister(validate, tag, fn)
	}
}

// mustRegister panics when a custom rule cannot be registered
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// validateOrderLines checks that a serialized items list decodes to at least one
// line with a positive quantity and a non-negative price.
func validateOrderLines(fl validator.FieldLevel) bool {
	lines, err := DecodeOrderLines(fl.Field().String())
	if err != nil || len(lines) == 0 {
		return false
	}
	for _, line := range lines {
		if line.Quantity < 1 || line.Price < 0 {
			return false
		}
	}
	return true
}

// FieldError describes one rejected field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned when a request fails its schema
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return "invalid data: " + strings.Join(parts, "; ")
}

// Validate checks v against its struct tags
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "email", "optemail":
		return "must be a valid email address"
	case "datetime":
		return fmt.Sprintf("must match the layout %s", fe.Param())
	case "orderlines":
		return "must be a JSON list of items with quantity of at least 1"
	case "orderstatus":
		return "must be one of pending, preparing, ready, completed, cancelled"
	case "reservationstatus":
		return "must be one of pending, confirmed, completed, cancelled"
	default:
		return "is invalid"
	}
}
