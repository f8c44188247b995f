package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fintrack/pkg/finance"
	"github.com/dmitrymomot/fintrack/pkg/forms"
)

func TestRegisterForm(t *testing.T) {
	t.Parallel()

	t.Run("zero income is rejected", func(t *testing.T) {
		f := forms.NewRegisterForm()
		f.SetName("Ada")
		f.SetEmail("ada@example.com")
		f.SetPassword("Abcdefg1")

		_, err := f.Submit()
		require.Error(t, err)
		assert.Equal(t, map[string]string{"monthlyIncome": "Monthly Income is required"}, f.Errors())
	})

	t.Run("income below a cent rounds to zero", func(t *testing.T) {
		f := forms.NewRegisterForm()
		f.SetName("Ada")
		f.SetEmail("ada@example.com")
		f.SetPassword("Abcdefg1")
		assert.False(t, f.SetMonthlyIncome(0.004))

		_, err := f.Submit()
		require.Error(t, err)
		assert.Equal(t, map[string]string{"monthlyIncome": "Monthly Income is required"}, f.Errors())
	})

	t.Run("live checks", func(t *testing.T) {
		f := forms.NewRegisterForm()
		assert.False(t, f.SetName(" A "))
		msg, _ := f.GetError("name")
		assert.Equal(t, "Name must be at least 2 characters", msg)

		assert.False(t, f.SetMonthlyIncome(-5))
		msg, _ = f.GetError("monthlyIncome")
		assert.Equal(t, "Monthly Income must be zero or positive", msg)

		assert.True(t, f.SetMonthlyIncome(2500))
		assert.True(t, f.HasError("name"))
	})

	t.Run("valid registration", func(t *testing.T) {
		f := forms.NewRegisterForm()
		f.SetName("  Ada   Lovelace ")
		f.SetEmail("Ada@Example.com")
		f.SetPassword("Abcdefg1")
		f.SetMonthlyIncome(2500.456)

		req, err := f.Submit()
		require.NoError(t, err)
		assert.Equal(t, finance.RegisterRequest{
			Name:          "Ada Lovelace",
			Email:         "ada@example.com",
			Password:      "Abcdefg1",
			MonthlyIncome: 2500.46,
		}, req)
	})

	t.Run("open clears inputs", func(t *testing.T) {
		f := forms.NewRegisterForm()
		f.SetName("Ada")
		f.SetEmail("bad")
		f.Open()

		assert.Empty(t, f.Errors())
		_, err := f.Submit()
		require.Error(t, err)
		msg, _ := f.GetError("name")
		assert.Equal(t, "Name is required", msg)
	})
}
