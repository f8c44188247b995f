package finance

import (
	"errors"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/fintrack/pkg/validator"
)

var contract = newContract()

func newContract() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CheckRequest validates a request struct against its validate tags.
// Failures come back as validator.ValidationErrors with one entry per field,
// worded like the form rules. A nil or non-struct argument yields
// ErrInvalidRequest.
func CheckRequest(req any) error {
	err := contract.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(ErrInvalidRequest, err)
	}

	verrs := make(validator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if verrs.Has(fe.Field()) {
			continue
		}
		verrs.Add(toValidationError(fe))
	}
	return verrs
}

func toValidationError(fe playground.FieldError) validator.ValidationError {
	kind, message, values := describe(fe)
	verr := validator.ValidationError{
		Field:             fe.Field(),
		Message:           validator.HumanizeField(fe.Field()) + " " + message,
		Rule:              kind,
		TranslationValues: values,
	}
	if kind != validator.RuleCustom {
		verr.TranslationKey = "validation." + string(kind)
	}
	return verr
}

// describe maps a contract tag onto the matching form rule.
func describe(fe playground.FieldError) (validator.RuleKind, string, map[string]any) {
	param := fe.Param()
	numeric := isNumeric(fe.Kind())

	switch fe.Tag() {
	case "required":
		return validator.RuleRequired, "is required", nil
	case "email":
		return validator.RuleEmail, "must be in a valid email format", nil
	case "min", "gte":
		if numeric {
			if param == "0" {
				return validator.RuleNonNegative, "must be zero or positive", nil
			}
			return validator.RuleMinValue, "must be at least " + param, map[string]any{"min": param}
		}
		return validator.RuleMinLength, "must be at least " + param + " characters", map[string]any{"min": param}
	case "max", "lte":
		if numeric {
			return validator.RuleMaxValue, "must be at most " + param, map[string]any{"max": param}
		}
		return validator.RuleMaxLength, "must be at most " + param + " characters", map[string]any{"max": param}
	case "gt":
		if numeric && param == "0" {
			return validator.RulePositive, "must be a positive number", nil
		}
		return validator.RuleCustom, "must be greater than " + param, map[string]any{"min": param}
	case "oneof":
		values := strings.Join(strings.Fields(param), ", ")
		return validator.RuleOneOf, "must be one of " + values, map[string]any{"values": values}
	case "datetime":
		return validator.RuleDate, "must be a valid date", map[string]any{"layout": param}
	default:
		return validator.RuleCustom, "is invalid", nil
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
