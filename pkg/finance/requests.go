package finance

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=50"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	MonthlyIncome float64 `json:"monthlyIncome" validate:"required,gte=0"`
}

type CreateCategoryRequest struct {
	CategoryName string     `json:"categoryName" validate:"required,min=2,max=50"`
	Type         AmountType `json:"type" validate:"required,oneof=INCOME EXPENSE"`
}

// UpdateCategoryRequest sends only the attributes being changed.
type UpdateCategoryRequest struct {
	CategoryID   int64       `json:"categoryId" validate:"required,gt=0"`
	CategoryName *string     `json:"categoryName,omitempty" validate:"omitempty,min=2,max=50"`
	Type         *AmountType `json:"type,omitempty" validate:"omitempty,oneof=INCOME EXPENSE"`
}

// CreateTransactionRequest is used for both create and update calls.
type CreateTransactionRequest struct {
	Type        AmountType `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Description string     `json:"description,omitempty" validate:"max=255"`
	Date        string     `json:"date" validate:"required,datetime=2006-01-02T15:04:05"`
	CategoryID  int64      `json:"categoryId" validate:"required,gt=0"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
}
