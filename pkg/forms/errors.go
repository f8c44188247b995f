package forms

import "errors"

var (
	ErrNotEditing      = errors.New("form is not editing an existing entity")
	ErrNothingChanged  = errors.New("no changes to submit")
	ErrUnknownCategory = errors.New("category does not match the transaction type")
)
