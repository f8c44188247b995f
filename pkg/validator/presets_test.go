package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fintrack/pkg/validator"
)

func TestPresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rules []validator.Rule
		value validator.Value
		want  string
	}{
		{"email ok", validator.EmailRules(), validator.String("me@example.com"), ""},
		{"email missing", validator.EmailRules(), validator.String(""), "Field is required"},
		{"password ok", validator.PasswordRules(), validator.String("Abcdefg1"), ""},
		{"password short", validator.PasswordRules(), validator.String("Ab1"), "Field must be at least 8 characters"},
		{"password weak", validator.PasswordRules(), validator.String("abcdefgh"), "Field must contain uppercase, lowercase, and number"},
		{"simple password", validator.SimplePasswordRules(), validator.String("abcdef"), ""},
		{"name ok", validator.NameRules(), validator.String("Ada Lovelace"), ""},
		{"name digits", validator.NameRules(), validator.String("Ada 2"), "Field must contain only alphabets"},
		{"simple name digits allowed", validator.SimpleNameRules(), validator.String("Rent 2024"), ""},
		{"phone", validator.PhoneNumberRules(), validator.String("555-123-4567"), ""},
		{"positive amount", validator.PositiveAmountRules(), validator.Number(-2), "Field must be a positive number"},
		{"non-negative still rejects zero", validator.NonNegativeAmountRules(), validator.Number(0), "Field is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validator.Validate(tt.value, tt.rules, "Field")
			assert.Equal(t, tt.want == "", res.Valid)
			assert.Equal(t, tt.want, res.Error)
		})
	}

	t.Run("each call returns a fresh slice", func(t *testing.T) {
		a := validator.EmailRules()
		a[0] = validator.Positive()
		assert.Equal(t, validator.RuleRequired, validator.EmailRules()[0].Kind)
	})
}
