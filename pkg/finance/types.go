package finance

import (
	"fmt"
	"strings"
)

// AmountType tells income from expense. Categories and transactions both carry one.
type AmountType string

const (
	AmountIncome  AmountType = "INCOME"
	AmountExpense AmountType = "EXPENSE"
)

// AmountTypes lists the accepted amount types in display order.
func AmountTypes() []AmountType {
	return []AmountType{AmountIncome, AmountExpense}
}

func (t AmountType) Valid() bool {
	return t == AmountIncome || t == AmountExpense
}

func (t AmountType) String() string {
	return string(t)
}

// ParseAmountType accepts the type name in any case.
func ParseAmountType(s string) (AmountType, error) {
	t := AmountType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmountType, s)
	}
	return t, nil
}

type Category struct {
	CategoryID   int64      `json:"categoryId" yaml:"categoryId"`
	CategoryName string     `json:"categoryName" yaml:"categoryName"`
	Type         AmountType `json:"type" yaml:"type"`
	User         int64      `json:"user" yaml:"user"`
}

// Transaction as returned by the API. Date is an ISO local date-time,
// e.g. "2024-03-01T00:00:00".
type Transaction struct {
	TransactionID int64      `json:"transactionId" yaml:"transactionId"`
	Type          AmountType `json:"type" yaml:"type"`
	Description   string     `json:"description,omitempty" yaml:"description,omitempty"`
	Date          string     `json:"date" yaml:"date"`
	Category      Category   `json:"category" yaml:"category"`
	UserID        int64      `json:"userId" yaml:"userId"`
	Amount        float64    `json:"amount" yaml:"amount"`
}

// CategoriesOfType keeps the categories whose type is t, in order.
func CategoriesOfType(categories []Category, t AmountType) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
