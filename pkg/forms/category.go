package forms

import (
	"github.com/dmitrymomot/fintrack/pkg/finance"
	"github.com/dmitrymomot/fintrack/pkg/sanitizer"
	"github.com/dmitrymomot/fintrack/pkg/validator"
)

// CategoryForm adds a category or edits an existing one.
type CategoryForm struct {
	base
	categoryID int64
	name       string
	kind       finance.AmountType
	initial    finance.Category
}

func NewCategoryForm(opts ...Option) *CategoryForm {
	f := &CategoryForm{base: newBase("category", opts)}
	f.Open(nil)
	return f
}

// Open loads c for editing, or an empty expense category when c is nil.
func (f *CategoryForm) Open(c *finance.Category) {
	f.categoryID, f.name, f.kind = 0, "", finance.AmountExpense
	if c != nil {
		f.categoryID, f.name, f.kind = c.CategoryID, c.CategoryName, c.Type
	}
	f.initial = finance.Category{CategoryID: f.categoryID, CategoryName: f.name, Type: f.kind}
	f.reset()
}

func (f *CategoryForm) IsEdit() bool {
	return f.categoryID != 0
}

func (f *CategoryForm) SetName(name string) bool {
	f.name = name
	return f.engine.ValidateField("categoryName", f.nameValue(), validator.SimpleNameRules(), "Category Name")
}

func (f *CategoryForm) SetType(t finance.AmountType) bool {
	f.kind = t
	return f.engine.ValidateField("type", validator.String(string(t)), typeRules(), "Type")
}

// Submit validates the form and returns the body of a create call.
func (f *CategoryForm) Submit() (finance.CreateCategoryRequest, error) {
	if !f.validate() {
		return finance.CreateCategoryRequest{}, f.rejected()
	}
	req := finance.CreateCategoryRequest{
		CategoryName: sanitizer.NormalizeWhitespace(f.name),
		Type:         f.kind,
	}
	if err := f.checked(req); err != nil {
		return finance.CreateCategoryRequest{}, err
	}
	return req, nil
}

// SubmitUpdate validates the form and returns an update carrying only the
// attributes that differ from the opened category.
func (f *CategoryForm) SubmitUpdate() (finance.UpdateCategoryRequest, error) {
	if !f.IsEdit() {
		return finance.UpdateCategoryRequest{}, ErrNotEditing
	}
	if !f.validate() {
		return finance.UpdateCategoryRequest{}, f.rejected()
	}

	req := finance.UpdateCategoryRequest{CategoryID: f.categoryID}
	if name := sanitizer.NormalizeWhitespace(f.name); name != f.initial.CategoryName {
		req.CategoryName = &name
	}
	if f.kind != f.initial.Type {
		kind := f.kind
		req.Type = &kind
	}
	if req.CategoryName == nil && req.Type == nil {
		return finance.UpdateCategoryRequest{}, ErrNothingChanged
	}

	if err := f.checked(req); err != nil {
		return finance.UpdateCategoryRequest{}, err
	}
	return req, nil
}

func (f *CategoryForm) validate() bool {
	return f.engine.ValidateFields(validator.Fields{
		"categoryName": {Value: f.nameValue(), Rules: validator.SimpleNameRules(), DisplayName: "Category Name"},
		"type":         {Value: validator.String(string(f.kind)), Rules: typeRules(), DisplayName: "Type"},
	})
}

func (f *CategoryForm) nameValue() validator.Value {
	return validator.String(sanitizer.NormalizeWhitespace(f.name))
}

func typeRules() []validator.Rule {
	return []validator.Rule{
		validator.Required(),
		validator.OneOf(string(finance.AmountIncome), string(finance.AmountExpense)),
	}
}
