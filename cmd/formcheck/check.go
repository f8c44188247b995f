package main

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/fintrack/pkg/finance"
	"github.com/dmitrymomot/fintrack/pkg/forms"
	"github.com/dmitrymomot/fintrack/pkg/validator"
)

// result is what formcheck prints.
type result struct {
	Form    string            `json:"form"`
	Valid   bool              `json:"valid"`
	Errors  map[string]string `json:"errors"`
	Request any               `json:"request,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// check fills the named form from the payload and submits it. Malformed
// input values are returned as errors; a rejected submission is a result.
func check(p payload, opts ...forms.Option) (result, error) {
	var (
		req       any
		submitErr error
	)

	switch p.Form {
	case "login":
		req, submitErr = checkLogin(p, opts)
	case "register":
		req, submitErr = checkRegister(p, opts)
	case "category":
		req, submitErr = checkCategory(p, opts)
	case "transaction":
		req, submitErr = checkTransaction(p, opts)
	default:
		return result{}, fmt.Errorf("%w: %q", errUnknownForm, p.Form)
	}
	if errors.Is(submitErr, errBadValue) {
		return result{}, submitErr
	}

	res := result{Form: p.Form, Errors: map[string]string{}}
	switch {
	case submitErr == nil:
		res.Valid = true
		res.Request = req
	case validator.IsValidationError(submitErr):
		res.Errors = validator.ExtractValidationErrors(submitErr).Map()
	default:
		res.Error = submitErr.Error()
	}
	return res, nil
}

func checkLogin(p payload, opts []forms.Option) (any, error) {
	f := forms.NewLoginForm(opts...)
	if err := errors.Join(
		p.Values.setString("email", func(s string) { f.SetEmail(s) }),
		p.Values.setString("password", func(s string) { f.SetPassword(s) }),
	); err != nil {
		return nil, err
	}
	req, err := f.Submit()
	return req, err
}

func checkRegister(p payload, opts []forms.Option) (any, error) {
	f := forms.NewRegisterForm(opts...)
	if err := errors.Join(
		p.Values.setString("name", func(s string) { f.SetName(s) }),
		p.Values.setString("email", func(s string) { f.SetEmail(s) }),
		p.Values.setString("password", func(s string) { f.SetPassword(s) }),
		p.Values.setNumber("monthlyIncome", func(n float64) { f.SetMonthlyIncome(n) }),
	); err != nil {
		return nil, err
	}
	req, err := f.Submit()
	return req, err
}

func checkCategory(p payload, opts []forms.Option) (any, error) {
	f := forms.NewCategoryForm(opts...)
	f.Open(p.Category)
	if err := errors.Join(
		p.Values.setString("categoryName", func(s string) { f.SetName(s) }),
		p.Values.setString("type", func(s string) { f.SetType(finance.AmountType(s)) }),
	); err != nil {
		return nil, err
	}
	if f.IsEdit() {
		req, err := f.SubmitUpdate()
		return req, err
	}
	req, err := f.Submit()
	return req, err
}

func checkTransaction(p payload, opts []forms.Option) (any, error) {
	f := forms.NewTransactionForm(p.Categories, opts...)
	f.Open(p.Transaction, p.Today)
	if err := errors.Join(
		p.Values.setString("type", func(s string) { f.SetType(finance.AmountType(s)) }),
		p.Values.setNumber("categoryId", func(n float64) { f.SetCategory(int64(n)) }),
		p.Values.setNumber("amount", func(n float64) { f.SetAmount(n) }),
		p.Values.setString("date", func(s string) { f.SetDate(s) }),
		p.Values.setString("description", func(s string) { f.SetDescription(s) }),
	); err != nil {
		return nil, err
	}
	if !f.CanSubmit() {
		return nil, forms.ErrNothingChanged
	}
	req, err := f.Submit()
	return req, err
}
