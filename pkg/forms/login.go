package forms

import (
	"github.com/dmitrymomot/fintrack/pkg/finance"
	"github.com/dmitrymomot/fintrack/pkg/sanitizer"
	"github.com/dmitrymomot/fintrack/pkg/validator"
)

// LoginForm validates email and password as they are typed.
//
// The live password check uses the strong password rules while submission
// only requires six characters, so accounts created under older rules can
// still sign in.
type LoginForm struct {
	base
	email    string
	password string
}

func NewLoginForm(opts ...Option) *LoginForm {
	return &LoginForm{base: newBase("login", opts)}
}

// Open clears the inputs and starts a new session.
func (f *LoginForm) Open() {
	f.email, f.password = "", ""
	f.reset()
}

func (f *LoginForm) SetEmail(email string) bool {
	f.email = email
	return f.engine.ValidateField("email", validator.String(sanitizer.NormalizeEmail(email)), validator.EmailRules(), "Email")
}

func (f *LoginForm) SetPassword(password string) bool {
	f.password = password
	return f.engine.ValidateField("password", validator.String(password), validator.PasswordRules(), "Password")
}

// Submit validates both fields and returns the login request with a
// normalized email.
func (f *LoginForm) Submit() (finance.LoginRequest, error) {
	ok := f.engine.ValidateFields(validator.Fields{
		"email": {
			Value:       validator.String(sanitizer.NormalizeEmail(f.email)),
			Rules:       validator.EmailRules(),
			DisplayName: "Email",
		},
		"password": {
			Value:       validator.String(f.password),
			Rules:       validator.SimplePasswordRules(),
			DisplayName: "Password",
		},
	})
	if !ok {
		return finance.LoginRequest{}, f.rejected()
	}

	req := finance.LoginRequest{
		Email:    sanitizer.NormalizeEmail(f.email),
		Password: f.password,
	}
	if err := f.checked(req); err != nil {
		return finance.LoginRequest{}, err
	}
	return req, nil
}
