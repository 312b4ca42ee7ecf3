package employee

import "context"

// IDRef pairs a row ID with the natural employee code. The attendance table
// references employees by row ID while the seed dataset is keyed by code.
type IDRef struct {
	ID         string
	EmployeeID string
}

type Repository interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetByDepartment(ctx context.Context, deptCode string) ([]Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	Search(ctx context.Context, term string, limit int) ([]Employee, error)
	Count(ctx context.Context, deptCode string) (int64, error)
	ListCodes(ctx context.Context) ([]string, error)
	ListIDRefs(ctx context.Context) ([]IDRef, error)
	BulkInsert(ctx context.Context, employees []Employee) (int, error)
}
