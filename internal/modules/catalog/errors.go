package catalog

import "errors"

var (
	ErrNotFound  = errors.New("store not found")
	ErrForbidden = errors.New("forbidden")
)
