package attendance

import (
	"context"
	"time"
)

// DayFilter narrows a single-day fetch to a department or one employee.
// Zero value means no restriction.
type DayFilter struct {
	DeptCode   string
	EmployeeID string // SG code
}

type Repository interface {
	// GetForDate returns all records for one calendar date, optionally filtered.
	GetForDate(ctx context.Context, date time.Time, filter DayFilter) ([]Record, error)
	// GetByEmployee returns an employee's records, latest first.
	GetByEmployee(ctx context.Context, employeeDBID string, limit int) ([]Record, error)
	// GetLeaveByEmployee returns only leave-bucket records, latest first.
	GetLeaveByEmployee(ctx context.Context, employeeDBID string, limit int) ([]Record, error)
	// GetForEmployeeOnDate returns the single record for one employee and day,
	// or ErrRecordNotFound.
	GetForEmployeeOnDate(ctx context.Context, employeeDBID string, date time.Time) (Record, error)
	// BulkUpsert inserts records, ignoring rows whose (employee_id, date) pair
	// already exists. Returns the number of rows actually inserted.
	BulkUpsert(ctx context.Context, records []Record) (int, error)
}
