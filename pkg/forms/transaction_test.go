package forms_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fintrack/pkg/finance"
	"github.com/dmitrymomot/fintrack/pkg/forms"
	"github.com/dmitrymomot/fintrack/pkg/i18n"
	"github.com/dmitrymomot/fintrack/pkg/validator"
)

var testCategories = []finance.Category{
	{CategoryID: 1, CategoryName: "Salary", Type: finance.AmountIncome},
	{CategoryID: 2, CategoryName: "Rent", Type: finance.AmountExpense},
	{CategoryID: 3, CategoryName: "Food", Type: finance.AmountExpense},
}

func TestTransactionForm_New(t *testing.T) {
	t.Parallel()

	f := forms.NewTransactionForm(testCategories)
	f.Open(nil, "2024-03-01")

	assert.False(t, f.IsEdit())
	assert.True(t, f.CanSubmit())
	assert.False(t, f.IsDirty())
	assert.Len(t, f.FilterCategories(), 2)

	_, err := f.Submit()
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"amount":     "Amount is required",
		"categoryId": "Category is required",
	}, f.Errors())

	assert.True(t, f.SetAmount(42.5))
	assert.True(t, f.SetCategory(3))
	f.SetDescription(" groceries ")
	assert.True(t, f.IsDirty())

	req, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, finance.CreateTransactionRequest{
		Type:        finance.AmountExpense,
		Description: "groceries",
		Date:        "2024-03-01T00:00:00",
		CategoryID:  3,
		Amount:      42.5,
	}, req)
	assert.Empty(t, f.Errors())
}

func TestTransactionForm_LiveValidation(t *testing.T) {
	t.Parallel()

	f := forms.NewTransactionForm(testCategories)
	f.Open(nil, "2024-03-01")

	assert.False(t, f.SetAmount(-3))
	msg, _ := f.GetError("amount")
	assert.Equal(t, "Amount must be a positive number", msg)

	assert.False(t, f.SetCategory(0))
	assert.True(t, f.HasError("categoryId"))

	f.SetDate("")
	assert.False(t, f.HasError("date"))
	assert.False(t, f.BlurDate())
	msg, _ = f.GetError("date")
	assert.Equal(t, "Date is required", msg)

	f.SetDate("2024-02-30")
	assert.False(t, f.BlurDate())
	msg, _ = f.GetError("date")
	assert.Equal(t, "Date must be a valid date", msg)

	assert.True(t, f.HasError("amount"))
}

func TestTransactionForm_SetType(t *testing.T) {
	t.Parallel()

	f := forms.NewTransactionForm(testCategories)
	f.Open(nil, "2024-03-01")
	f.SetCategory(2)
	f.SetAmount(-1)
	require.True(t, f.HasError("amount"))

	f.SetType(finance.AmountIncome)
	assert.Empty(t, f.Errors())
	assert.Equal(t, []finance.Category{testCategories[0]}, f.FilterCategories())

	f.SetAmount(1000)
	_, err := f.Submit()
	require.Error(t, err)
	msg, _ := f.GetError("categoryId")
	assert.Equal(t, "Category is required", msg)
}

func TestTransactionForm_Edit(t *testing.T) {
	t.Parallel()

	tx := &finance.Transaction{
		TransactionID: 9,
		Type:          finance.AmountExpense,
		Description:   "March rent",
		Date:          "2024-03-05T00:00:00",
		Category:      testCategories[1],
		Amount:        900,
	}

	f := forms.NewTransactionForm(testCategories)
	f.SetAmount(-1)
	f.Open(tx, "2024-04-01")

	assert.Empty(t, f.Errors())
	assert.True(t, f.IsEdit())
	assert.Equal(t, int64(9), f.TransactionID())
	assert.False(t, f.IsDirty())
	assert.False(t, f.CanSubmit())

	f.SetAmount(950)
	assert.True(t, f.CanSubmit())

	req, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T00:00:00", req.Date)
	assert.Equal(t, int64(2), req.CategoryID)
	assert.Equal(t, 950.0, req.Amount)

	f.SetAmount(900)
	assert.False(t, f.IsDirty())
}

func TestTransactionForm_CategoryOfOtherType(t *testing.T) {
	t.Parallel()

	f := forms.NewTransactionForm(testCategories)
	f.Open(nil, "2024-03-01")
	f.SetAmount(10)
	f.SetCategory(1)

	_, err := f.Submit()
	assert.ErrorIs(t, err, forms.ErrUnknownCategory)

	f.SetCategories(nil)
	_, err = f.Submit()
	assert.NoError(t, err)
}

func TestTransactionForm_Translated(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(validator.Translations, "translations"))
	require.NoError(t, err)

	f := forms.NewTransactionForm(testCategories, forms.WithTranslator(tr, "it"))
	f.Open(nil, "2024-03-01")
	f.SetAmount(-2)

	msg, _ := f.GetError("amount")
	assert.Equal(t, "Importo deve essere un numero positivo", msg)

	f.SetType(finance.AmountIncome)
	f.SetAmount(10)
	f.SetCategory(1)
	f.SetDescription(strings.Repeat("x", 256))
	_, err = f.Submit()
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"description": "Descrizione può contenere al massimo 255 caratteri",
	}, f.Errors())
}

func TestTransactionForm_SubmittedValuesMatchErrors(t *testing.T) {
	t.Parallel()

	t.Run("amount below a cent", func(t *testing.T) {
		f := forms.NewTransactionForm(testCategories)
		f.Open(nil, "2024-03-01")
		f.SetCategory(3)
		assert.False(t, f.SetAmount(0.004))

		_, err := f.Submit()
		require.Error(t, err)
		assert.True(t, f.HasError("amount"))
		assert.Equal(t, map[string]string{"amount": "Amount is required"}, f.Errors())
	})

	t.Run("contract failure lands in the error map", func(t *testing.T) {
		f := forms.NewTransactionForm(testCategories)
		f.Open(nil, "2024-03-01")
		f.SetCategory(3)
		f.SetAmount(5)
		f.SetDescription(strings.Repeat("x", 256))

		_, err := f.Submit()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, f.HasError("description"))
		assert.Equal(t, map[string]string{
			"description": "Description must be at most 255 characters",
		}, f.Errors())

		f.SetDescription("lunch")
		_, err = f.Submit()
		require.NoError(t, err)
		assert.Empty(t, f.Errors())
	})
}
