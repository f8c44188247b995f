package forms

import (
	"github.com/dmitrymomot/fintrack/pkg/finance"
	"github.com/dmitrymomot/fintrack/pkg/sanitizer"
	"github.com/dmitrymomot/fintrack/pkg/validator"
)

type RegisterForm struct {
	base
	name          string
	email         string
	password      string
	monthlyIncome float64
}

func NewRegisterForm(opts ...Option) *RegisterForm {
	return &RegisterForm{base: newBase("register", opts)}
}

func (f *RegisterForm) Open() {
	*f = RegisterForm{base: f.base}
	f.reset()
}

func (f *RegisterForm) SetName(name string) bool {
	f.name = name
	return f.engine.ValidateField("name", f.nameValue(), validator.SimpleNameRules(), "Name")
}

func (f *RegisterForm) SetEmail(email string) bool {
	f.email = email
	return f.engine.ValidateField("email", validator.String(sanitizer.NormalizeEmail(email)), validator.EmailRules(), "Email")
}

func (f *RegisterForm) SetPassword(password string) bool {
	f.password = password
	return f.engine.ValidateField("password", validator.String(password), validator.PasswordRules(), "Password")
}

// SetMonthlyIncome validates the income rounded to cents. Zero is rejected
// as missing.
func (f *RegisterForm) SetMonthlyIncome(income float64) bool {
	f.monthlyIncome = income
	return f.engine.ValidateField("monthlyIncome", validator.Number(sanitizer.RoundMoney(income)), validator.NonNegativeAmountRules(), "Monthly Income")
}

func (f *RegisterForm) Submit() (finance.RegisterRequest, error) {
	ok := f.engine.ValidateFields(validator.Fields{
		"name":          {Value: f.nameValue(), Rules: validator.SimpleNameRules(), DisplayName: "Name"},
		"email":         {Value: validator.String(sanitizer.NormalizeEmail(f.email)), Rules: validator.EmailRules(), DisplayName: "Email"},
		"password":      {Value: validator.String(f.password), Rules: validator.PasswordRules(), DisplayName: "Password"},
		"monthlyIncome": {Value: validator.Number(sanitizer.RoundMoney(f.monthlyIncome)), Rules: validator.NonNegativeAmountRules(), DisplayName: "Monthly Income"},
	})
	if !ok {
		return finance.RegisterRequest{}, f.rejected()
	}

	req := finance.RegisterRequest{
		Name:          sanitizer.NormalizeWhitespace(f.name),
		Email:         sanitizer.NormalizeEmail(f.email),
		Password:      f.password,
		MonthlyIncome: sanitizer.RoundMoney(f.monthlyIncome),
	}
	if err := f.checked(req); err != nil {
		return finance.RegisterRequest{}, err
	}
	return req, nil
}

func (f *RegisterForm) nameValue() validator.Value {
	return validator.String(sanitizer.NormalizeWhitespace(f.name))
}
