package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentCycle    = errors.New("department parent chain contains a cycle")
)
