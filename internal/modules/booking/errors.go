package booking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrSlotTaken  = errors.New("slot unavailable")
	ErrForbidden  = errors.New("forbidden")
)
