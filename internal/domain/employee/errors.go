package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrSearchTermTooShort  = errors.New("search term must be longer than 2 characters")
	ErrInvalidEmployeeCode = errors.New("invalid employee code format")
)
