package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fintrack/pkg/validator"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("empty rules are always valid", func(t *testing.T) {
		for _, v := range []validator.Value{validator.Null(), validator.String(""), validator.Number(0)} {
			res := validator.Validate(v, nil, "Anything")
			assert.True(t, res.Valid)
			assert.Empty(t, res.Error)
			assert.Empty(t, res.Rule)
		}
	})

	t.Run("first failure wins", func(t *testing.T) {
		res := validator.Validate(validator.String(""), []validator.Rule{
			validator.Required(),
			validator.MinLength(3),
			validator.Email(),
		}, "Email")
		assert.False(t, res.Valid)
		assert.Equal(t, "Email is required", res.Error)
		assert.Equal(t, validator.RuleRequired, res.Rule)
		assert.Equal(t, "validation.required", res.TranslationKey)
	})

	t.Run("later rules are not evaluated", func(t *testing.T) {
		called := false
		spy := validator.Custom(func(validator.Value) bool {
			called = true
			return true
		}, "spy")

		res := validator.Validate(validator.String("ab"), []validator.Rule{validator.MinLength(3), spy}, "")
		assert.False(t, res.Valid)
		assert.False(t, called)
	})

	t.Run("all rules pass", func(t *testing.T) {
		res := validator.Validate(validator.String("a@b.co"), validator.EmailRules(), "Email")
		assert.Equal(t, validator.Result{Valid: true}, res)
	})

	t.Run("params are reported", func(t *testing.T) {
		res := validator.Validate(validator.String("ab"), []validator.Rule{validator.MinLength(3)}, "Name")
		assert.Equal(t, "Name must be at least 3 characters", res.Error)
		assert.Equal(t, map[string]any{"min": 3}, res.Params)
	})
}

func TestValidate_Message(t *testing.T) {
	t.Parallel()

	fail := func(msg string) []validator.Rule {
		return []validator.Rule{validator.Custom(func(validator.Value) bool { return false }, msg)}
	}

	tests := []struct {
		name        string
		message     string
		displayName string
		want        string
	}{
		{"display name prepended", "is required", "Amount", "Amount is required"},
		{"no display name", "is required", "", "is required"},
		{"placeholder", "%{field} looks wrong", "Amount", "Amount looks wrong"},
		{"placeholder mid sentence", "please check %{field} again", "Date", "please check Date again"},
		{"placeholder without name", "%{field} looks wrong", "", "looks wrong"},
		{"empty message", "", "Amount", "Amount is invalid"},
		{"empty everything", "", "", "is invalid"},
		{"trims whitespace", "  is required ", " Amount ", "Amount is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validator.Validate(validator.Null(), fail(tt.message), tt.displayName)
			assert.False(t, res.Valid)
			assert.Equal(t, tt.want, res.Error)
		})
	}
}
