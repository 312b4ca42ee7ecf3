package stats

import (
	"context"
	"time"
)

// Service computes derived statistics. Implementations degrade gracefully:
// a failed store read yields a zero-valued snapshot, never an error surfaced
// to the caller of a read-only statistic.
type Service interface {
	// EmployeeStatistics aggregates over one department, or the whole
	// workforce when deptCode is empty.
	EmployeeStatistics(ctx context.Context, deptCode string) EmployeeStatistics

	// TodayAttendance aggregates one calendar date's records, optionally
	// narrowed to a department or a single employee (by SG code).
	TodayAttendance(ctx context.Context, date time.Time, deptCode, employeeID string) TodayAttendanceStats

	// DepartmentStatistics resolves a department and aggregates its employees.
	DepartmentStatistics(ctx context.Context, deptCode string) (DepartmentStatistics, error)
}
