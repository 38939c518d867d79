// Package validation runs declarative schema checks on request bodies and path
// parameters before any handler logic executes.
//
// Schemas are plain structs with `validate` tags (go-playground/validator).
// Fields are evaluated in declaration order and each field's tags left to right;
// only the first violation is reported, as an *entity.ValidationError whose
// Message is the caller-facing text.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"news-explorer/internal/domain/entity"
)

// Custom tags registered on every Validator.
const (
	TagPasswordStrength = "password_strength"
	TagWebURL           = "weburl"
	TagObjectID         = "objectid"
	TagMaxBytes         = "maxbytes"
)

// Messages maps "field.tag" (field is the JSON name) to the message surfaced
// when that tag fails on that field.
type Messages map[string]string

// Schema is implemented by request DTOs that carry their own messages.
type Schema interface {
	ValidationMessages() Messages
}

// Validator wraps the go-playground validator with custom rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a new validator instance with custom rules. It panics when a
// rule cannot be registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names so messages can be keyed the way clients see them.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := registerCustomValidators(validate); err != nil {
		panic(fmt.Sprintf("validation: %v", err))
	}

	return &Validator{validate: validate}
}

// Struct validates s and returns the first violation, or nil.
// When s implements Schema its messages take precedence over the defaults.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate struct: %w", err)
	}

	var msgs Messages
	if schema, ok := s.(Schema); ok {
		msgs = schema.ValidationMessages()
	}
	return firstViolation(fieldErrs[0], msgs)
}

// Var validates a single value against tag, reporting failures under field.
func (v *Validator) Var(field string, value any, tag string, msgs Messages) error {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %s: %w", field, err)
	}

	fe := fieldErrs[0]
	if msg, ok := msgs[field+"."+fe.Tag()]; ok {
		return &entity.ValidationError{Field: field, Message: msg}
	}
	return &entity.ValidationError{Field: field, Message: defaultMessage(field, fe.Tag(), fe.Param())}
}

func firstViolation(fe validator.FieldError, msgs Messages) error {
	field := fe.Field()
	if msg, ok := msgs[field+"."+fe.Tag()]; ok {
		return &entity.ValidationError{Field: field, Message: msg}
	}
	return &entity.ValidationError{Field: field, Message: defaultMessage(field, fe.Tag(), fe.Param())}
}

func defaultMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("The %q field is required", field)
	case "email":
		return fmt.Sprintf("The %q field must be a valid email address", field)
	case "min":
		return fmt.Sprintf("The minimum length of the %q field is %s", field, param)
	case "max":
		return fmt.Sprintf("The maximum length of the %q field is %s", field, param)
	case TagWebURL:
		return fmt.Sprintf("The %q field must be a valid URL", field)
	case TagObjectID:
		return fmt.Sprintf("The %q must be 24 hexadecimal characters", field)
	case TagPasswordStrength:
		return "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	case TagMaxBytes:
		return fmt.Sprintf("The %q field must be at most %s bytes long", field, param)
	case "datetime":
		return fmt.Sprintf("The %q field must be an RFC 3339 timestamp", field)
	default:
		return fmt.Sprintf("The %q field is invalid", field)
	}
}

func registerCustomValidators(validate *validator.Validate) error {
	rules := map[string]validator.Func{
		// At least one uppercase letter, one lowercase letter and one digit.
		TagPasswordStrength: func(fl validator.FieldLevel) bool {
			var hasUpper, hasLower, hasDigit bool
			for _, r := range fl.Field().String() {
				switch {
				case unicode.IsUpper(r):
					hasUpper = true
				case unicode.IsLower(r):
					hasLower = true
				case unicode.IsDigit(r):
					hasDigit = true
				}
			}
			return hasUpper && hasLower && hasDigit
		},
		TagWebURL: func(fl validator.FieldLevel) bool {
			return entity.ValidateURL(fl.FieldName(), fl.Field().String()) == nil
		},
		TagObjectID: func(fl validator.FieldLevel) bool {
			return entity.IsObjectID(fl.Field().String())
		},
		// "max" counts runes; this counts encoded bytes.
		TagMaxBytes: func(fl validator.FieldLevel) bool {
			limit, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return len(fl.Field().String()) <= limit
		},
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}
