package finance

import "errors"

var (
	ErrInvalidAmountType = errors.New("invalid amount type")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidRequest    = errors.New("invalid request")
)
