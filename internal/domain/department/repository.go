package department

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Department, error)
	// GetWithEmployees returns only departments that have at least one employee assigned.
	GetWithEmployees(ctx context.Context) ([]Department, error)
	GetByCode(ctx context.Context, deptCode string) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	Search(ctx context.Context, term string, limit int) ([]Department, error)
	CountChildren(ctx context.Context, parentID string) (int64, error)
	ListCodes(ctx context.Context) ([]string, error)
	BulkInsert(ctx context.Context, departments []Department) (int, error)
}
