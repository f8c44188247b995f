package forms

import (
	"github.com/dmitrymomot/fintrack/pkg/finance"
	"github.com/dmitrymomot/fintrack/pkg/logger"
	"github.com/dmitrymomot/fintrack/pkg/sanitizer"
	"github.com/dmitrymomot/fintrack/pkg/validator"
)

type transactionData struct {
	kind        finance.AmountType
	amount      float64
	categoryID  int64
	date        string
	description string
}

// TransactionForm adds or edits a transaction.
//
// Type, amount and category are validated when changed, the date when the
// input loses focus. The description is never validated.
type TransactionForm struct {
	base
	transactionID int64
	data          transactionData
	initial       transactionData
	categories    []finance.Category
}

// NewTransactionForm creates a form choosing from categories.
func NewTransactionForm(categories []finance.Category, opts ...Option) *TransactionForm {
	return &TransactionForm{
		base:       newBase("transaction", opts),
		categories: categories,
	}
}

// SetCategories replaces the selectable categories.
func (f *TransactionForm) SetCategories(categories []finance.Category) {
	f.categories = categories
}

// Open loads tx for editing, or defaults for a new expense dated today
// (a DateLayout day). Errors from the previous session are cleared.
func (f *TransactionForm) Open(tx *finance.Transaction, today string) {
	f.reset()

	f.transactionID = 0
	f.data = transactionData{kind: finance.AmountExpense, date: today}
	if tx != nil {
		f.transactionID = tx.TransactionID
		f.data = transactionData{
			kind:        tx.Type,
			amount:      tx.Amount,
			categoryID:  tx.Category.CategoryID,
			date:        finance.DayOf(tx.Date),
			description: tx.Description,
		}
	}
	f.initial = f.data
}

func (f *TransactionForm) IsEdit() bool {
	return f.transactionID != 0
}

// TransactionID is the ID of the edited transaction, or zero.
func (f *TransactionForm) TransactionID() int64 {
	return f.transactionID
}

// SetType switches between income and expense. The selected category
// belongs to the old type, so it is reset and all errors are cleared.
func (f *TransactionForm) SetType(t finance.AmountType) {
	f.data.kind = t
	f.data.categoryID = 0
	f.engine.ClearAllErrors()
}

func (f *TransactionForm) SetCategory(id int64) bool {
	f.data.categoryID = id
	return f.engine.ValidateField("categoryId", validator.Number(id), []validator.Rule{validator.Required()}, "Category")
}

// SetAmount validates the amount rounded to cents, the value that is sent.
func (f *TransactionForm) SetAmount(amount float64) bool {
	f.data.amount = amount
	return f.engine.ValidateField("amount", validator.Number(sanitizer.RoundMoney(amount)), validator.PositiveAmountRules(), "Amount")
}

// SetDate stores the day without validating it; see BlurDate.
func (f *TransactionForm) SetDate(day string) {
	f.data.date = day
}

func (f *TransactionForm) BlurDate() bool {
	return f.engine.ValidateField("date", validator.String(f.data.date), dateRules(), "Date")
}

func (f *TransactionForm) SetDescription(description string) {
	f.data.description = description
}

// IsDirty reports whether any input differs from what Open loaded.
func (f *TransactionForm) IsDirty() bool {
	return f.data != f.initial
}

// CanSubmit is false while editing without changes.
func (f *TransactionForm) CanSubmit() bool {
	return !f.IsEdit() || f.IsDirty()
}

// FilterCategories returns the categories matching the selected type.
func (f *TransactionForm) FilterCategories() []finance.Category {
	return finance.CategoriesOfType(f.categories, f.data.kind)
}

// Submit validates the form and returns the request body with the date as a
// local date-time at midnight.
func (f *TransactionForm) Submit() (finance.CreateTransactionRequest, error) {
	ok := f.engine.ValidateFields(validator.Fields{
		"type": {
			Value:       validator.String(string(f.data.kind)),
			Rules:       []validator.Rule{validator.Required()},
			DisplayName: "Transaction Type",
		},
		"amount": {
			Value:       validator.Number(sanitizer.RoundMoney(f.data.amount)),
			Rules:       validator.PositiveAmountRules(),
			DisplayName: "Amount",
		},
		"categoryId": {
			Value:       validator.Number(f.data.categoryID),
			Rules:       []validator.Rule{validator.Required()},
			DisplayName: "Category",
		},
		"date": {
			Value:       validator.String(f.data.date),
			Rules:       dateRules(),
			DisplayName: "Date",
		},
	})
	if !ok {
		return finance.CreateTransactionRequest{}, f.rejected()
	}

	if f.categories != nil && !f.categoryAllowed() {
		f.logger.Warn("category not selectable", logger.FormID(f.id), logger.Field("categoryId"))
		return finance.CreateTransactionRequest{}, ErrUnknownCategory
	}

	date, err := finance.ToLocalDateTime(f.data.date)
	if err != nil {
		return finance.CreateTransactionRequest{}, err
	}
	req := finance.CreateTransactionRequest{
		Type:        f.data.kind,
		Description: sanitizer.Trim(f.data.description),
		Date:        date,
		CategoryID:  f.data.categoryID,
		Amount:      sanitizer.RoundMoney(f.data.amount),
	}
	if err := f.checked(req); err != nil {
		return finance.CreateTransactionRequest{}, err
	}
	return req, nil
}

func (f *TransactionForm) categoryAllowed() bool {
	for _, c := range f.FilterCategories() {
		if c.CategoryID == f.data.categoryID {
			return true
		}
	}
	return false
}

func dateRules() []validator.Rule {
	return []validator.Rule{validator.Required(), validator.Date(finance.DateLayout)}
}
