package payment

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrDeclined   = errors.New("payment declined")
)
