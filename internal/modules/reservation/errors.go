package reservation

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrRoomNotFound            = errors.New("room not found")
	ErrNotAvailable            = errors.New("room not available for the requested dates")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrPaymentFailed           = errors.New("payment failed")
)
